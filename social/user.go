package social

import "time"

// NewUser builds a fresh account with the full default privacy, settings
// and notifications trees. This is the only place user normalization runs;
// later updates go through MergeUser so user-chosen settings are never
// clobbered with defaults.
func NewUser(email, password, name string, now time.Time) User {
	return User{
		ID:             NewID(now),
		Email:          email,
		Password:       password,
		Name:           name,
		Friends:        StringList{},
		FriendRequests: StringList{},
		Privacy:        defaultPrivacy(),
		Settings:       defaultSettings(),
		CreatedAt:      FormatTime(now),
	}
}

func defaultPrivacy() Privacy {
	return Privacy{
		Visibility: "private",
		Pic:        true,
		FR:         true,
		DM:         true,
		DMAudience: "everyone",
		Online:     false,
		Tags:       true,
		Search:     true,
		Activity:   false,
		Location:   false,
	}
}

func defaultSettings() Settings {
	return Settings{
		DarkMode:     false,
		Compact:      false,
		HighContrast: false,
		ReduceMotion: false,
		FontSize:     "medium",
		Theme:        "blue",
		Language:     "en",
		Notifications: Notifications{
			Event:  true,
			Friend: true,
			Post:   true,
			Sound:  false,
			Volume: 0.5,
		},
	}
}
