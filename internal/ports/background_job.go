package ports

import "context"

// BackgroundJob — фоновый компонент приложения (планировщик и т.п.).
type BackgroundJob interface {
	Run(ctx context.Context) error
	Close() error
}
