package catalog

import "github.com/m04kA/SMC-SalonService/pkg/txmanager"

// DBExecutor интерфейс исполнителя запросов (*sql.DB или транзакция из контекста)
type DBExecutor = txmanager.DBExecutor
