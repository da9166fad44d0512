package models

// Profile is one stored remote-connection record. Secret is held in
// plaintext only while the vault is unlocked; at rest the whole profile
// list is serialized and sealed inside the encrypted container, never
// per-profile.
//
// The JSON tags (`name`, `ip`, `password`) are the on-disk field names of
// the container payload and must not change: containers written by earlier
// builds of the tool use them.
type Profile struct {
	Name    string `json:"name"`
	Address string `json:"ip"`
	Secret  string `json:"password"`
}
