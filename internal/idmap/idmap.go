// Package idmap memoizes the mapping between numeric user and group
// ids and the corresponding names in the system databases.
package idmap

import (
	"os/user"
	"strconv"
	"sync"
)

// Cache maps uids and gids to names, remembering every successful
// lookup for the lifetime of the process. Failed lookups are not
// remembered, so asking for the same id again retries.
//
// The zero value is ready to use and safe for concurrent use.
type Cache struct {
	// groups maps gids to group names.
	groups map[int]string

	// lookupGroupID allows mocking user.LookupGroupId for testing.
	lookupGroupID func(gid string) (*user.Group, error)

	// lookupUserID allows mocking user.LookupId for testing.
	lookupUserID func(uid string) (*user.User, error)

	// mu guards the two maps.
	mu sync.Mutex

	// users maps uids to login names.
	users map[int]string
}

// Username returns the login name for uid or an empty string when
// the user database has no such entry.
func (c *Cache) Username(uid int) string {
	defer c.mu.Unlock()
	c.mu.Lock()
	if name, ok := c.users[uid]; ok {
		return name
	}
	lookup := c.lookupUserID
	if lookup == nil {
		lookup = user.LookupId
	}
	pw, err := lookup(strconv.Itoa(uid))
	if err != nil {
		return ""
	}
	if c.users == nil {
		c.users = make(map[int]string)
	}
	c.users[uid] = pw.Username
	return pw.Username
}

// Groupname returns the group name for gid or an empty string when
// the group database has no such entry.
func (c *Cache) Groupname(gid int) string {
	defer c.mu.Unlock()
	c.mu.Lock()
	if name, ok := c.groups[gid]; ok {
		return name
	}
	lookup := c.lookupGroupID
	if lookup == nil {
		lookup = user.LookupGroupId
	}
	group, err := lookup(strconv.Itoa(gid))
	if err != nil {
		return ""
	}
	if c.groups == nil {
		c.groups = make(map[int]string)
	}
	c.groups[gid] = group.Name
	return group.Name
}

// defaultCache is the process-wide cache behind Username and Groupname.
var defaultCache = &Cache{}

// Username returns the login name for uid using the process-wide Cache.
func Username(uid int) string {
	return defaultCache.Username(uid)
}

// Groupname returns the group name for gid using the process-wide Cache.
func Groupname(gid int) string {
	return defaultCache.Groupname(gid)
}
