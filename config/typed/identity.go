package typed

import (
	"fmt"
	"os/user"
	"strconv"

	"github.com/0xalexb/mirrorconf/config/value"
)

// Identity is an account given either by name or by numeric id.
type Identity struct {
	name    string
	id      uint32
	numeric bool
}

// IdentityName returns the Identity named name.
func IdentityName(name string) Identity {
	return Identity{name: name}
}

// IdentityID returns the Identity with numeric id.
func IdentityID(id uint32) Identity {
	return Identity{id: id, numeric: true}
}

// Name returns the account name when the identity was given by name.
func (i Identity) Name() (string, bool) {
	return i.name, !i.numeric
}

// ID returns the numeric id when the identity was given by id.
func (i Identity) ID() (uint32, bool) {
	return i.id, i.numeric
}

func (i Identity) String() string {
	if i.numeric {
		return strconv.FormatUint(uint64(i.id), 10)
	}

	return strconv.Quote(i.name)
}

func (i *Identity) load(node *value.Node, typeName, key, what string) error {
	switch node.Kind() {
	case value.KindString:
		name, _ := node.Str()
		*i = IdentityName(name)
	case value.KindNumber:
		number, _ := node.Number()

		id, ok := number.FixedPointUint64(0)
		if !ok {
			return outOfRange(typeName, key, "not unsigned: "+number.String())
		}

		*i = IdentityID(uint32(id)) //nolint:gosec // narrowing to the platform id width
	default:
		return mismatch(typeName, key, "not a "+what+" or id")
	}

	return nil
}

func parseID(raw string) (uint32, error) {
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing id %q: %w", raw, err)
	}

	return uint32(parsed), nil
}

// User is the account a service runs as.
type User struct {
	Identity
}

// Load implements Value.
func (u *User) Load(node *value.Node, typeName, key string) error {
	return u.load(node, typeName, key, "username")
}

// Describe implements Value.
func (u *User) Describe() (string, bool) {
	return u.String(), true
}

// UID returns the numeric user id, looking the name up in the account database if needed.
func (u User) UID() (uint32, error) {
	if id, ok := u.ID(); ok {
		return id, nil
	}

	account, err := user.Lookup(u.name)
	if err != nil {
		return 0, fmt.Errorf("looking up user %q: %w", u.name, err)
	}

	return parseID(account.Uid)
}

// Group is the account group a service runs as.
type Group struct {
	Identity
}

// Load implements Value.
func (g *Group) Load(node *value.Node, typeName, key string) error {
	return g.load(node, typeName, key, "groupname")
}

// Describe implements Value.
func (g *Group) Describe() (string, bool) {
	return g.String(), true
}

// GID returns the numeric group id, looking the name up in the group database if needed.
func (g Group) GID() (uint32, error) {
	if id, ok := g.ID(); ok {
		return id, nil
	}

	group, err := user.LookupGroup(g.name)
	if err != nil {
		return 0, fmt.Errorf("looking up group %q: %w", g.name, err)
	}

	return parseID(group.Gid)
}
