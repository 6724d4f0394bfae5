// Package system abstracts the process-level facts a render reads: the
// effective user identity, the working directory and environment variables.
package system

import "os"

// RootUID is the reserved superuser identifier.
const RootUID = 0

// Identity reports the effective user id of the process. A negative value
// means the platform cannot answer.
type Identity interface {
	EffectiveUID() int
}

// Environment exposes the working directory and environment variables.
type Environment interface {
	Getwd() (string, error)
	LookupEnv(key string) (string, bool)
}

// OS is the real process Identity and Environment.
type OS struct{}

// EffectiveUID returns os.Geteuid, which is -1 on Windows.
func (OS) EffectiveUID() int { return os.Geteuid() }

func (OS) Getwd() (string, error) { return os.Getwd() }

func (OS) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// FixedIdentity is an Identity that always returns the same uid.
type FixedIdentity int

func (f FixedIdentity) EffectiveUID() int { return int(f) }

// StaticEnv is an Environment backed by fixed values.
type StaticEnv struct {
	Dir    string
	DirErr error
	Vars   map[string]string
}

func (e StaticEnv) Getwd() (string, error) {
	if e.DirErr != nil {
		return "", e.DirErr
	}
	return e.Dir, nil
}

func (e StaticEnv) LookupEnv(key string) (string, bool) {
	v, ok := e.Vars[key]
	return v, ok
}
