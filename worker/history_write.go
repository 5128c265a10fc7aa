package worker

// Record persists one upload outcome. No-op when history is disabled.
func Record(upload Upload) error {
	if db == nil {
		return nil
	}
	return db.Create(&upload).Error
}
