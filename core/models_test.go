package core

import (
	"testing"
)

func TestIDFromName(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same name produces same ID",
			content: "Palm Frond Signature Villa",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long name",
			content: "An unusually long listing name that should still hash to a stable identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromName(tt.content)
			id2 := IDFromName(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromName() produced different IDs for same name: %d vs %d", id1, id2)
			}
		})
	}

	t.Run("different names produce different IDs", func(t *testing.T) {
		if IDFromName("Marina Sky Apartment") == IDFromName("Palm Frond Signature Villa") {
			t.Error("IDFromName() collided for two distinct names")
		}
	})
}
