package product

import "github.com/m04kA/SMC-ConfiguratorService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
