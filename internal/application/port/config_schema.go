package port

import "github.com/bnema/dumbtip/internal/domain/entity"

//go:generate mockery --name=ConfigSchemaProvider --output=mocks --outpkg=mocks --structname=MockConfigSchemaProvider --with-expecter

// ConfigSchemaProvider provides configuration schema information.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
}
