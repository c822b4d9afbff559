// Package credentials persists the session token and cached user identity
// outside of process memory, the way the browser console keeps them in
// cookies. The store owns the token's lifetime: the request layer only
// reads it, and only the 401 handler clears it.
package credentials

import "github.com/sgzs6721/lessonctl/pkg/api"

// Store is the persistent credential storage contract.
//
// Token returns the empty string when nothing is stored or the backing
// storage is unreadable; it never fails the caller. Clear removes the
// token and the cached user together and is safe to call when nothing
// is stored. The campus selector survives Clear on purpose: it is user
// preference, not session state.
type Store interface {
	Token() string
	SetToken(token string) error
	User() *api.UserInfo
	SetUser(user *api.UserInfo) error
	CampusID() int64
	SetCampusID(id int64) error
	Clear() error
}
