package worker

// Recent returns the newest history entries, most recent first.
func Recent(limit int) ([]Upload, error) {
	if db == nil {
		return nil, nil
	}

	var uploads []Upload
	err := db.Order("created_at DESC").Limit(limit).Find(&uploads).Error
	return uploads, err
}

// BySource returns every recorded outcome for one local file path.
func BySource(path string) ([]Upload, error) {
	if db == nil {
		return nil, nil
	}

	var uploads []Upload
	err := db.Where("source_path = ?", path).Order("created_at DESC").Find(&uploads).Error
	return uploads, err
}
