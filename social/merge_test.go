package social

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func testUser(t *testing.T) User {
	t.Helper()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	u := NewUser("a@x.com", "pw", "Ada", now)
	u.Bio = "hello"
	u.Friends = StringList{"2", "3"}
	u.Settings.Notifications.Volume = 0.9
	u.Settings.Notifications.Sound = true
	return u
}

func TestMergeUserScalarOverwrite(t *testing.T) {
	t.Parallel()

	stored := testUser(t)
	got := MergeUser(stored, UserPatch{Name: ptr("Grace"), Bio: ptr("")})
	if got.Name != "Grace" {
		t.Fatalf("MergeUser() name = %q, want %q", got.Name, "Grace")
	}
	if got.Bio != "" {
		t.Fatalf("MergeUser() bio = %q, want empty", got.Bio)
	}
	if got.Email != stored.Email || got.Password != stored.Password {
		t.Fatalf("MergeUser() touched absent scalar fields")
	}
	if got.ID != stored.ID || got.CreatedAt != stored.CreatedAt {
		t.Fatalf("MergeUser() touched id or createdAt")
	}
}

func TestMergeUserIdempotent(t *testing.T) {
	t.Parallel()

	stored := testUser(t)
	patch := UserPatch{
		Name:    ptr("Grace"),
		Friends: StringList{"9"},
		Privacy: &PrivacyPatch{Online: ptr(true)},
		Settings: &SettingsPatch{
			DarkMode:      ptr(true),
			Notifications: &NotificationsPatch{Volume: ptr(0.25)},
		},
	}
	once := MergeUser(stored, patch)
	twice := MergeUser(once, patch)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("MergeUser() not idempotent:\nonce  = %+v\ntwice = %+v", once, twice)
	}
}

func TestMergeUserPreservesUntouchedNestedKeys(t *testing.T) {
	t.Parallel()

	stored := testUser(t)
	got := MergeUser(stored, UserPatch{
		Settings: &SettingsPatch{DarkMode: ptr(true)},
	})
	if !got.Settings.DarkMode {
		t.Fatalf("MergeUser() darkMode = false, want true")
	}
	if !reflect.DeepEqual(got.Settings.Notifications, stored.Settings.Notifications) {
		t.Fatalf("MergeUser() notifications = %+v, want stored %+v",
			got.Settings.Notifications, stored.Settings.Notifications)
	}
	if got.Settings.Theme != stored.Settings.Theme {
		t.Fatalf("MergeUser() theme = %q, want %q", got.Settings.Theme, stored.Settings.Theme)
	}
}

func TestMergeUserNotificationsShallowMerge(t *testing.T) {
	t.Parallel()

	stored := testUser(t)
	got := MergeUser(stored, UserPatch{
		Settings: &SettingsPatch{
			Notifications: &NotificationsPatch{Volume: ptr(0.1)},
		},
	})
	if got.Settings.Notifications.Volume != 0.1 {
		t.Fatalf("MergeUser() volume = %v, want 0.1", got.Settings.Notifications.Volume)
	}
	if !got.Settings.Notifications.Sound {
		t.Fatalf("MergeUser() sound = false, want stored true")
	}
	if !got.Settings.Notifications.Event {
		t.Fatalf("MergeUser() event = false, want stored true")
	}
}

func TestMergeUserPrivacyShallowMerge(t *testing.T) {
	t.Parallel()

	stored := testUser(t)
	got := MergeUser(stored, UserPatch{
		Privacy: &PrivacyPatch{Visibility: ptr("public"), Online: ptr(true)},
	})
	if got.Privacy.Visibility != "public" || !got.Privacy.Online {
		t.Fatalf("MergeUser() privacy = %+v", got.Privacy)
	}
	if !got.Privacy.Pic || !got.Privacy.DM || got.Privacy.DMAudience != "everyone" {
		t.Fatalf("MergeUser() dropped untouched privacy keys: %+v", got.Privacy)
	}
}

func TestMergeUserListsReplaceOnlyWhenSupplied(t *testing.T) {
	t.Parallel()

	stored := testUser(t)

	got := MergeUser(stored, UserPatch{Name: ptr("x")})
	if !reflect.DeepEqual(got.Friends, stored.Friends) {
		t.Fatalf("MergeUser() friends = %v, want retained %v", got.Friends, stored.Friends)
	}

	got = MergeUser(stored, UserPatch{Friends: StringList{}})
	if len(got.Friends) != 0 {
		t.Fatalf("MergeUser() friends = %v, want wholesale replacement with empty", got.Friends)
	}
}

func TestUserPatchDecodeToleratesWrongTypedLists(t *testing.T) {
	t.Parallel()

	var patch UserPatch
	if err := json.Unmarshal([]byte(`{"friends":"nope","name":"Grace"}`), &patch); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if patch.Friends != nil {
		t.Fatalf("patch friends = %v, want nil (treated as absent)", patch.Friends)
	}

	stored := testUser(t)
	got := MergeUser(stored, patch)
	if !reflect.DeepEqual(got.Friends, stored.Friends) {
		t.Fatalf("MergeUser() friends = %v, want retained %v", got.Friends, stored.Friends)
	}
	if got.Name != "Grace" {
		t.Fatalf("MergeUser() name = %q, want %q", got.Name, "Grace")
	}
}
