package get_locations

import "github.com/m04kA/SMC-ConfiguratorService/internal/domain"

type LocationDirectory interface {
	List() []domain.Location
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
