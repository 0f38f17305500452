package internal

import (
	"github.com/samber/lo"
)

type EnvEntry struct {
	Key   string
	Value string
}

type EnvSection struct {
	Title   string
	Entries []EnvEntry
}

// EnvTemplate lists the variables a fresh checkout needs, with placeholder values.
func EnvTemplate() []EnvSection {
	return []EnvSection{
		{
			Title: "Firebase Configuration",
			Entries: []EnvEntry{
				{"FIREBASE_API_KEY", "your_firebase_api_key_here"},
				{"FIREBASE_AUTH_DOMAIN", "your_project.firebaseapp.com"},
				{"FIREBASE_PROJECT_ID", "your_project_id"},
				{"FIREBASE_STORAGE_BUCKET", "your_project.appspot.com"},
				{"FIREBASE_MESSAGING_SENDER_ID", "123456789"},
				{"FIREBASE_APP_ID", "1:123456789:web:abcdef123456"},
				{"FIREBASE_MEASUREMENT_ID", "G-XXXXXXXXXX"},
				{"FIREBASE_CREDENTIALS_FILE", "./service-account.json"},
			},
		},
		{
			Title: "API Configuration",
			Entries: []EnvEntry{
				{"REACT_APP_API_BASE_URL", "https://messnger-backend-1.onrender.com"},
				{"MOCK_MODE", "false"},
				{"REQUEST_TIMEOUT", "10s"},
				{"MESSAGES_LIMIT", "50"},
			},
		},
		{
			Title: "Feature Flags",
			Entries: []EnvEntry{
				{"ENABLE_AUTHENTICATION", "true"},
				{"ENABLE_REAL_TIME_MESSAGING", "true"},
				{"ENABLE_FILE_UPLOAD", "true"},
			},
		},
		{
			Title: "App Configuration",
			Entries: []EnvEntry{
				{"APP_NAME", "WhatsApp Web UI"},
				{"APP_VERSION", "1.0.0"},
				{"ENVIRONMENT", "development"},
				{"LOG_LEVEL", "INFO"},
			},
		},
		{
			Title: "UI Configuration",
			Entries: []EnvEntry{
				{"THEME", "light"},
				{"LANGUAGE", "en"},
			},
		},
	}
}

// EnvTemplateMap flattens the template for godotenv.Write.
func EnvTemplateMap() map[string]string {
	entries := lo.FlatMap(EnvTemplate(), func(s EnvSection, _ int) []EnvEntry {
		return s.Entries
	})
	return lo.SliceToMap(entries, func(e EnvEntry) (string, string) {
		return e.Key, e.Value
	})
}
