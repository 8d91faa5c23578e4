package model

import (
	"encoding/json"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestNewUserDefaults(t *testing.T) {
	user := NewUser(UserFields{})
	if user.Username != DefaultUsername || user.Password != DefaultPassword || user.Email != DefaultEmail {
		t.Fatalf("unexpected defaults: %+v", user)
	}

	user = NewUser(UserFields{Username: strPtr("ada"), Email: strPtr("")})
	if user.Username != "ada" {
		t.Fatalf("expected username ada, got %q", user.Username)
	}
	if user.Password != DefaultPassword {
		t.Fatalf("expected default password, got %q", user.Password)
	}
	// An explicit empty string is a value, not a missing field.
	if user.Email != "" {
		t.Fatalf("expected empty email to be kept, got %q", user.Email)
	}
}

func TestNewKeyboardDefaults(t *testing.T) {
	keyboard := NewKeyboard(KeyboardFields{Name: strPtr("K2"), Switches: strPtr("Box Jade")})
	if keyboard.Name != "K2" || keyboard.Switches != "Box Jade" {
		t.Fatalf("supplied fields not kept: %+v", keyboard)
	}
	if keyboard.Keycaps != DefaultKeycaps || keyboard.Image != DefaultImage {
		t.Fatalf("unexpected defaults: %+v", keyboard)
	}
	if keyboard.UserID != 0 {
		t.Fatalf("expected no owner without user id, got %d", keyboard.UserID)
	}

	owner := uint(7)
	keyboard = NewKeyboard(KeyboardFields{UserID: &owner})
	if keyboard.UserID != 7 || keyboard.Name != DefaultKeyboardName {
		t.Fatalf("unexpected keyboard: %+v", keyboard)
	}
}

func TestUserSerializeShape(t *testing.T) {
	user := &User{ID: 1, Username: "ada", Password: "p", Email: "a@b.com"}
	raw, err := json.Marshal(user.Serialize())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"id":1,"username":"ada","password":"p","email":"a@b.com","keyboards":[]}`
	if string(raw) != want {
		t.Fatalf("serialized user = %s, want %s", raw, want)
	}
}

func TestUserSerializeNestsKeyboardsWithoutBacklink(t *testing.T) {
	user := &User{
		ID:       3,
		Username: "u",
		Password: "p",
		Email:    "e",
		Keyboards: []Keyboard{
			{ID: 1, Name: "K2", Switches: "Box Jade", Keycaps: DefaultKeycaps, Image: DefaultImage, UserID: 3},
			{ID: 2, Name: "Q1", Switches: "Gateron", Keycaps: "GMK", Image: "q1.png", UserID: 3},
		},
	}
	raw, err := json.Marshal(user.Serialize())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"id":3,"username":"u","password":"p","email":"e","keyboards":[` +
		`{"id":1,"name":"K2","switches":"Box Jade","keycaps":"No keycaps given","image":"No image given"},` +
		`{"id":2,"name":"Q1","switches":"Gateron","keycaps":"GMK","image":"q1.png"}]}`
	if string(raw) != want {
		t.Fatalf("serialized user = %s, want %s", raw, want)
	}
}

func TestKeyboardFieldsIgnoreBodyUserID(t *testing.T) {
	var fields KeyboardFields
	if err := json.Unmarshal([]byte(`{"name":"K2","user_id":9}`), &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if fields.UserID != nil {
		t.Fatalf("user_id must come from the path, got %d", *fields.UserID)
	}
	if fields.Name == nil || *fields.Name != "K2" {
		t.Fatalf("name not decoded: %+v", fields)
	}
}
