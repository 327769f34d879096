// Package capability holds the pool's authorization state: one transferable
// owner capability and a bounded set of admin capabilities, keyed by account
// address. Possession is established by the JWT layer; the registry only
// answers whether an address holds a right.
package capability

import (
	"sort"

	dErrors "stakepool/pkg/domain-errors"

	"stakepool/internal/staking/models"
)

// MaxAdmins bounds the admin set.
const MaxAdmins = 2

// Registry is not safe for concurrent use on its own; it lives inside the
// pool aggregate and is guarded by the pool's critical section.
type Registry struct {
	owner  models.Address
	admins map[models.Address]struct{}
}

// New creates a registry with the bootstrap owner.
func New(owner models.Address) *Registry {
	return &Registry{
		owner:  owner,
		admins: make(map[models.Address]struct{}),
	}
}

// Owner returns the current owner address.
func (r *Registry) Owner() models.Address {
	return r.owner
}

// IsOwner reports whether addr holds the owner capability.
func (r *Registry) IsOwner(addr models.Address) bool {
	return addr == r.owner
}

// IsPrivileged reports whether addr is the owner or an admin. This gates
// pause, unpause and add-rewards.
func (r *Registry) IsPrivileged(addr models.Address) bool {
	if r.IsOwner(addr) {
		return true
	}
	_, ok := r.admins[addr]
	return ok
}

// AdminCount returns the current admin set size.
func (r *Registry) AdminCount() int {
	return len(r.admins)
}

// Admins returns the admin addresses in stable order.
func (r *Registry) Admins() []models.Address {
	out := make([]models.Address, 0, len(r.admins))
	for addr := range r.admins {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GrantAdmin adds an admin on behalf of the owner and returns the new admin
// count.
func (r *Registry) GrantAdmin(caller, newAdmin models.Address) (int, error) {
	if !r.IsOwner(caller) {
		return len(r.admins), dErrors.New(dErrors.CodeUnauthorized, "only the owner can grant admin")
	}
	if _, ok := r.admins[newAdmin]; ok {
		return len(r.admins), dErrors.New(dErrors.CodeAlreadyExists, "address is already an admin")
	}
	if len(r.admins) >= MaxAdmins {
		return len(r.admins), dErrors.New(dErrors.CodeCapacityExceeded, "admin set is full")
	}
	r.admins[newAdmin] = struct{}{}
	return len(r.admins), nil
}

// RevokeAdmin removes an admin on behalf of the owner and returns the new
// admin count.
func (r *Registry) RevokeAdmin(caller, admin models.Address) (int, error) {
	if !r.IsOwner(caller) {
		return len(r.admins), dErrors.New(dErrors.CodeUnauthorized, "only the owner can revoke admin")
	}
	if _, ok := r.admins[admin]; !ok {
		return len(r.admins), dErrors.New(dErrors.CodeNotFound, "address is not an admin")
	}
	delete(r.admins, admin)
	return len(r.admins), nil
}

// TransferOwner moves the owner capability to a new address. The caller is
// re-verified against the recorded owner so a stale capability cannot
// transfer twice.
func (r *Registry) TransferOwner(caller, newOwner models.Address) error {
	if !r.IsOwner(caller) {
		return dErrors.New(dErrors.CodeUnauthorized, "only the owner can transfer ownership")
	}
	r.owner = newOwner
	return nil
}
