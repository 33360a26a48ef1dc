package models

// User is the account record kept in the remote collection store.
// ID is the store-assigned key; it is attached after reads and writes and is
// never part of the stored document itself.
type User struct {
	ID        string   `json:"id,omitempty"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Cards     []string `json:"cards"`
	Role      string   `json:"role,omitempty"` // customer | influencer | seller
	AvatarURL string   `json:"avatarUrl,omitempty"`
}

// UserUpdate carries the fields a profile mutation may change. Nil fields are
// left untouched; the same value doubles as the PATCH body sent to the store
// (unset fields are omitted) and as the shallow merge applied to the session.
type UserUpdate struct {
	Username  *string   `json:"username,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Cards     *[]string `json:"cards,omitempty"`
	Role      *string   `json:"role,omitempty"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
}
