package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtip/internal/application/usecase"
	"github.com/bnema/dumbtip/internal/cli/styles"
	"github.com/bnema/dumbtip/internal/domain/entity"
)

var (
	placeHost     string
	placeTooltip  string
	placeSide     string
	placeOffset   float64
	placeViewport string
	placeScroll   float64
	placeJSON     bool
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Compute where a tooltip is drawn",
	Long: `Compute the document position of a tooltip bubble next to its host.

The side and offset default to the configured tooltip settings. When the
bubble would leave the viewport on the preferred side it is flipped once
to the opposite side.

Examples:
  dumbtip place --host 100,100,50,20 --tooltip 80x30
  dumbtip place --host 560,20,90,18 --tooltip 140x28 --side bottom-start --scroll 400`,
	Args: cobra.NoArgs,
	RunE: runPlace,
}

func init() {
	rootCmd.AddCommand(placeCmd)
	placeCmd.Flags().StringVar(&placeHost, "host", "", "host rect as top,left,width,height (document coordinates)")
	placeCmd.Flags().StringVar(&placeTooltip, "tooltip", "", "bubble size as WxH")
	placeCmd.Flags().StringVar(&placeSide, "side", "", "preferred side (default from config)")
	placeCmd.Flags().Float64Var(&placeOffset, "offset", 0, "gap between host and bubble (default from config)")
	placeCmd.Flags().StringVar(&placeViewport, "viewport", "1024x768", "viewport size as WxH")
	placeCmd.Flags().Float64Var(&placeScroll, "scroll", 0, "vertical scroll offset of the viewport")
	placeCmd.Flags().BoolVar(&placeJSON, "json", false, "print as JSON")
	_ = placeCmd.MarkFlagRequired("host")
	_ = placeCmd.MarkFlagRequired("tooltip")
}

func runPlace(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	host, err := parseRect(placeHost)
	if err != nil {
		return fmt.Errorf("--host: %w", err)
	}
	size, err := parseSize(placeTooltip)
	if err != nil {
		return fmt.Errorf("--tooltip: %w", err)
	}
	vp, err := parseSize(placeViewport)
	if err != nil {
		return fmt.Errorf("--viewport: %w", err)
	}

	eff := app.Config.Tooltip.Effective()
	side := placeSide
	if !cmd.Flags().Changed("side") {
		side = string(eff.Side)
	}
	offset := placeOffset
	if !cmd.Flags().Changed("offset") {
		offset = eff.Offset
	}

	out, err := usecase.NewComputePlacementUseCase().Execute(app.Ctx(), usecase.ComputePlacementInput{
		Host:     host,
		Tooltip:  size,
		Side:     side,
		Offset:   offset,
		Viewport: entity.Viewport{Width: vp.Width, Height: vp.Height, ScrollTop: placeScroll},
	})
	if err != nil {
		return err
	}

	if placeJSON {
		return writeJSON(cmd, out)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewPlacementRenderer(app.Theme).Render(out))
	return nil
}

// parseRect parses "top,left,width,height".
func parseRect(s string) (entity.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return entity.Rect{}, fmt.Errorf("expected top,left,width,height, got %q", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return entity.Rect{}, fmt.Errorf("invalid number %q", p)
		}
		v[i] = f
	}
	if v[2] < 0 || v[3] < 0 {
		return entity.Rect{}, fmt.Errorf("width and height must not be negative")
	}
	return entity.Rect{Top: v[0], Left: v[1], Width: v[2], Height: v[3]}, nil
}

// parseSize parses "WxH".
func parseSize(s string) (entity.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return entity.Size{}, fmt.Errorf("expected WxH, got %q", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return entity.Size{}, fmt.Errorf("invalid width %q", w)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return entity.Size{}, fmt.Errorf("invalid height %q", h)
	}
	if width < 0 || height < 0 {
		return entity.Size{}, fmt.Errorf("size must not be negative")
	}
	return entity.Size{Width: width, Height: height}, nil
}
