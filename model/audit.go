package model

import "time"

// Audit carries the create/update stamp and version counter shared by every mutable table.
type Audit struct {
	CreateByID  string    `db:"create_by_id" json:"create_by_id"`
	CreateDtime time.Time `db:"create_dtime" json:"create_dtime"`
	UpdateByID  string    `db:"update_by_id" json:"update_by_id"`
	UpdateDtime time.Time `db:"update_dtime" json:"update_dtime"`
	VersionNbr  int64     `db:"version_nbr" json:"version_nbr"`
}

func (a *Audit) SetCreated(by string, at time.Time) {
	a.CreateByID = by
	a.CreateDtime = at
}

func (a *Audit) SetUpdated(by string, at time.Time) {
	a.UpdateByID = by
	a.UpdateDtime = at
}

func (a *Audit) Version() int64 { return a.VersionNbr }

func (a *Audit) SetVersion(v int64) { a.VersionNbr = v }

// VerifyAudit is embedded by records that carry a second-user verification stamp.
type VerifyAudit struct {
	VerifyByID  *string    `db:"verify_by_id" json:"verify_by_id,omitempty"`
	VerifyDtime *time.Time `db:"verify_dtime" json:"verify_dtime,omitempty"`
}

func (v *VerifyAudit) SetVerified(by string, at time.Time) {
	v.VerifyByID = &by
	v.VerifyDtime = &at
}

// Actor is the acting user resolved by the transport layer.
type Actor struct {
	UserID   uint64
	UserName string
}
