package common

import (
	"crypto/sha256"
	"fmt"

	"github.com/dtnitsch/wikitable-features/models"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// RecordHash identifies a record by its three raw representations.
func RecordHash(t *models.TableRecord) string {
	var data []byte
	for _, part := range []string{t.TableHTML, t.TableJSON, t.TableMarkup} {
		data = append(data, part...)
		data = append(data, 0)
	}
	return ContentHash(data)
}
