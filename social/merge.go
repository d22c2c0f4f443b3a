package social

// UserPatch carries only the fields a caller intends to change. Pointer
// fields distinguish "absent" from a zero value; list fields distinguish
// absent (nil) from an explicit replacement, including an empty one.
type UserPatch struct {
	Email          *string        `json:"email"`
	Password       *string        `json:"password"`
	Name           *string        `json:"name"`
	Bio            *string        `json:"bio"`
	Avatar         *string        `json:"avatar"`
	Cover          *string        `json:"cover"`
	Friends        StringList     `json:"friends"`
	FriendRequests StringList     `json:"friendRequests"`
	Privacy        *PrivacyPatch  `json:"privacy"`
	Settings       *SettingsPatch `json:"settings"`
	Bot            *bool          `json:"bot"`
}

type PrivacyPatch struct {
	Visibility *string `json:"visibility"`
	Pic        *bool   `json:"pic"`
	FR         *bool   `json:"fr"`
	DM         *bool   `json:"dm"`
	DMAudience *string `json:"dmAudience"`
	Online     *bool   `json:"online"`
	Tags       *bool   `json:"tags"`
	Search     *bool   `json:"search"`
	Activity   *bool   `json:"activity"`
	Location   *bool   `json:"location"`
}

type SettingsPatch struct {
	DarkMode      *bool               `json:"darkMode"`
	Compact       *bool               `json:"compact"`
	HighContrast  *bool               `json:"highContrast"`
	ReduceMotion  *bool               `json:"reduceMotion"`
	FontSize      *string             `json:"fontSize"`
	Theme         *string             `json:"theme"`
	Language      *string             `json:"language"`
	Notifications *NotificationsPatch `json:"notifications"`
}

type NotificationsPatch struct {
	Event  *bool    `json:"event"`
	Friend *bool    `json:"friend"`
	Post   *bool    `json:"post"`
	Sound  *bool    `json:"sound"`
	Volume *float64 `json:"volume"`
}

// MergeUser applies a partial update onto a stored user. Three tiers:
// scalar fields overwrite, friends/friendRequests replace wholesale only
// when the patch supplies a list, and privacy/settings shallow-merge key by
// key with settings.notifications getting its own shallow merge. id and
// createdAt are never touched. Applying the same patch twice yields the
// same result as applying it once.
func MergeUser(stored User, patch UserPatch) User {
	out := stored
	if patch.Email != nil {
		out.Email = *patch.Email
	}
	if patch.Password != nil {
		out.Password = *patch.Password
	}
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.Bio != nil {
		out.Bio = *patch.Bio
	}
	if patch.Avatar != nil {
		out.Avatar = *patch.Avatar
	}
	if patch.Cover != nil {
		out.Cover = *patch.Cover
	}
	if patch.Bot != nil {
		out.Bot = *patch.Bot
	}
	if patch.Friends != nil {
		out.Friends = patch.Friends
	}
	if patch.FriendRequests != nil {
		out.FriendRequests = patch.FriendRequests
	}
	if patch.Privacy != nil {
		out.Privacy = mergePrivacy(out.Privacy, *patch.Privacy)
	}
	if patch.Settings != nil {
		out.Settings = mergeSettings(out.Settings, *patch.Settings)
	}
	return out
}

func mergePrivacy(stored Privacy, patch PrivacyPatch) Privacy {
	if patch.Visibility != nil {
		stored.Visibility = *patch.Visibility
	}
	if patch.Pic != nil {
		stored.Pic = *patch.Pic
	}
	if patch.FR != nil {
		stored.FR = *patch.FR
	}
	if patch.DM != nil {
		stored.DM = *patch.DM
	}
	if patch.DMAudience != nil {
		stored.DMAudience = *patch.DMAudience
	}
	if patch.Online != nil {
		stored.Online = *patch.Online
	}
	if patch.Tags != nil {
		stored.Tags = *patch.Tags
	}
	if patch.Search != nil {
		stored.Search = *patch.Search
	}
	if patch.Activity != nil {
		stored.Activity = *patch.Activity
	}
	if patch.Location != nil {
		stored.Location = *patch.Location
	}
	return stored
}

func mergeSettings(stored Settings, patch SettingsPatch) Settings {
	if patch.DarkMode != nil {
		stored.DarkMode = *patch.DarkMode
	}
	if patch.Compact != nil {
		stored.Compact = *patch.Compact
	}
	if patch.HighContrast != nil {
		stored.HighContrast = *patch.HighContrast
	}
	if patch.ReduceMotion != nil {
		stored.ReduceMotion = *patch.ReduceMotion
	}
	if patch.FontSize != nil {
		stored.FontSize = *patch.FontSize
	}
	if patch.Theme != nil {
		stored.Theme = *patch.Theme
	}
	if patch.Language != nil {
		stored.Language = *patch.Language
	}
	if patch.Notifications != nil {
		stored.Notifications = mergeNotifications(stored.Notifications, *patch.Notifications)
	}
	return stored
}

func mergeNotifications(stored Notifications, patch NotificationsPatch) Notifications {
	if patch.Event != nil {
		stored.Event = *patch.Event
	}
	if patch.Friend != nil {
		stored.Friend = *patch.Friend
	}
	if patch.Post != nil {
		stored.Post = *patch.Post
	}
	if patch.Sound != nil {
		stored.Sound = *patch.Sound
	}
	if patch.Volume != nil {
		stored.Volume = *patch.Volume
	}
	return stored
}
