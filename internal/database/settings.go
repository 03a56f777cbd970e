package database

// Load returns the stored value for key. The second return reports
// whether the key was present; absence is not an error.
func (d *Database) Load(key string) (string, bool) {
	var value *string
	err := d.DB.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

// Save upserts a key/value pair. Writes are synchronous; another process
// writing the same key wins silently (last write wins).
func (d *Database) Save(key, value string) error {
	_, err := d.DB.Exec("INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingsErr("save", err)
}

// Clear removes every stored setting. Used by the explicit
// clear-local-data action, after which the caller reseeds defaults.
func (d *Database) Clear() error {
	_, err := d.DB.Exec("DELETE FROM settings")
	return wrapSettingsErr("clear", err)
}
