package services

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Tier is a capability a credential can grant.
type Tier uint8

const (
	TierRead Tier = 1 << iota
	TierExport
	TierAdmin
)

func (t Tier) String() string {
	switch t {
	case TierRead:
		return "read"
	case TierExport:
		return "export"
	case TierAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Tiers is the set of capabilities one credential holds.
type Tiers uint8

func (s Tiers) Has(t Tier) bool {
	return s&Tiers(t) != 0
}

func (s Tiers) Empty() bool {
	return s == 0
}

func (s Tiers) Names() []string {
	var names []string
	for _, t := range []Tier{TierRead, TierExport, TierAdmin} {
		if s.Has(t) {
			names = append(names, t.String())
		}
	}
	return names
}

// implies lists what each tier grants beyond itself. Admin covers read but
// not export.
var implies = map[Tier]Tiers{
	TierAdmin: Tiers(TierRead),
}

// closure adds every implied tier until the set stops growing.
func closure(s Tiers) Tiers {
	for {
		next := s
		for t, extra := range implies {
			if s.Has(t) {
				next |= extra
			}
		}
		if next == s {
			return s
		}
		s = next
	}
}

type secret struct {
	set    bool
	digest [blake2b.Size256]byte
}

func newSecret(value string) secret {
	if value == "" {
		return secret{}
	}
	return secret{set: true, digest: blake2b.Sum256([]byte(value))}
}

// matches compares fixed-length digests so timing does not depend on where
// or whether the inputs differ, nor on their lengths.
func (s secret) matches(d [blake2b.Size256]byte) bool {
	eq := subtle.ConstantTimeCompare(d[:], s.digest[:]) == 1
	return s.set && eq
}

// AccessKeys holds the per-tier secrets. An empty secret disables its tier.
// Legacy is the single pre-tier API key, accepted as admin.
type AccessKeys struct {
	read   secret
	export secret
	admin  secret
	legacy secret
}

func NewAccessKeys(read, export, admin, legacy string) *AccessKeys {
	return &AccessKeys{
		read:   newSecret(read),
		export: newSecret(export),
		admin:  newSecret(admin),
		legacy: newSecret(legacy),
	}
}

// Resolve returns every tier the token grants, implied tiers included.
func (k *AccessKeys) Resolve(token string) Tiers {
	if token == "" {
		return 0
	}
	d := blake2b.Sum256([]byte(token))

	// evaluate every comparison; no early exit
	read := k.read.matches(d)
	export := k.export.matches(d)
	admin := k.admin.matches(d)
	legacy := k.legacy.matches(d)

	var s Tiers
	if read {
		s |= Tiers(TierRead)
	}
	if export {
		s |= Tiers(TierExport)
	}
	if admin || legacy {
		s |= Tiers(TierAdmin)
	}
	return closure(s)
}

func (k *AccessKeys) HasRead(token string) bool   { return k.Resolve(token).Has(TierRead) }
func (k *AccessKeys) HasExport(token string) bool { return k.Resolve(token).Has(TierExport) }
func (k *AccessKeys) HasAdmin(token string) bool  { return k.Resolve(token).Has(TierAdmin) }

// BearerToken extracts the token from an Authorization header value. The
// scheme is case-insensitive.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
