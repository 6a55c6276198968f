package app

// SendNotification shows a desktop notification and mirrors it to the
// frontend as a "notification:sent" event.
func (a *App) SendNotification(title, body string) error {
	return a.notify.Send(a.ctx, title, body)
}

// IsNotificationPermissionGranted reports whether notifications can be
// sent. Delivery goes through the desktop session's notification
// service, which needs no per-app grant, so this is always true.
func (a *App) IsNotificationPermissionGranted() (bool, error) {
	return true, nil
}

// RequestNotificationPermission asks for notification permission.
// See IsNotificationPermissionGranted; kept so the frontend's
// permission flow works unchanged.
func (a *App) RequestNotificationPermission() (bool, error) {
	return true, nil
}
