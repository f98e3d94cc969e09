package store

import (
	"github.com/kilupskalvis/gvc/internal/models"
)

// LoadStaging reads the full staging-area state from the index key.
// A repository that has never staged anything yields an empty staging
// area.
func (s *Store) LoadStaging() (*models.StagingArea, error) {
	data, err := s.getValue(keyIndex)
	if err != nil {
		return nil, err
	}
	return models.DecodeStagingArea(data)
}

// SaveStaging re-serializes the full staging-area state and overwrites
// the index key. There is no incremental or append path.
func (s *Store) SaveStaging(sa *models.StagingArea) error {
	data, err := models.EncodeStagingArea(sa)
	if err != nil {
		return err
	}
	return s.setValue(keyIndex, data)
}
