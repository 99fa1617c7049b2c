// Package platform адаптирует клиент к ограничениям хост-платформы:
// отсутствие фоновой синхронизации, риск вытеснения локального хранилища.
package platform

// Capabilities описывает возможности платформы, на которой работает клиент.
// Заполняется при старте и дальше не меняется.
type Capabilities struct {
	// Platform имя платформы: ios, android, desktop
	Platform string

	// HasBackgroundSync платформа умеет синхронизировать в фоне.
	// iOS Safari не умеет, там включается foreground-триггер.
	HasBackgroundSync bool

	// Standalone клиент установлен как отдельное приложение
	Standalone bool
}

// NeedsForegroundSync reports whether the client must rely on
// foreground-triggered sync instead of background sync.
func (c Capabilities) NeedsForegroundSync() bool {
	return !c.HasBackgroundSync
}
