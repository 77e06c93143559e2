// Package audit stamps actor identity and time onto mutated records.
//
// Records declare what they support by implementing the capability interfaces below;
// model.Audit implements all three of Creatable, Updatable and Versioned.
package audit

import (
	"strings"
	"time"

	"github.com/muhammadheryan/drims/constant"
	cerr "github.com/muhammadheryan/drims/utils/errors"
)

type Updatable interface {
	SetUpdated(by string, at time.Time)
}

type Creatable interface {
	SetCreated(by string, at time.Time)
}

type Versioned interface {
	Version() int64
	SetVersion(v int64)
}

type Verifiable interface {
	SetVerified(by string, at time.Time)
}

// NormalizeActor upper-cases and bounds an actor name, failing when nothing usable remains.
func NormalizeActor(actor string) (string, error) {
	id := strings.ToUpper(strings.TrimSpace(actor))
	if id == "" {
		return "", &cerr.InvalidActorError{Actor: actor}
	}
	if len(id) > constant.AuditIDMaxLen {
		id = id[:constant.AuditIDMaxLen]
	}
	return id, nil
}

// Stamp sets the updater stamp, and on creation the creator stamp and version 1.
// Updates never touch the version: the guarded repository write bumps it.
func Stamp(entity Updatable, actor string, isNew bool, now time.Time) error {
	id, err := NormalizeActor(actor)
	if err != nil {
		return err
	}
	if isNew {
		if c, ok := entity.(Creatable); ok {
			c.SetCreated(id, now)
		}
		if v, ok := entity.(Versioned); ok {
			v.SetVersion(1)
		}
	}
	entity.SetUpdated(id, now)
	return nil
}

// StampVerify sets the verifier stamp.
func StampVerify(entity Verifiable, actor string, now time.Time) error {
	id, err := NormalizeActor(actor)
	if err != nil {
		return err
	}
	entity.SetVerified(id, now)
	return nil
}
