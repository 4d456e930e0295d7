package domain

// ItemStatus represents the custody state of a found item.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "AVAILABLE"
	ItemStatusClaimed   ItemStatus = "CLAIMED"
	ItemStatusReturned  ItemStatus = "RETURNED"
	ItemStatusDisposed  ItemStatus = "DISPOSED"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusAvailable, ItemStatusClaimed, ItemStatusReturned, ItemStatusDisposed:
		return true
	}
	return false
}

// MatchStatus represents the review state of an item/report match.
type MatchStatus string

const (
	MatchStatusPending       MatchStatus = "PENDING"
	MatchStatusConfirmed     MatchStatus = "CONFIRMED"
	MatchStatusRejected      MatchStatus = "REJECTED"
	MatchStatusAutoConfirmed MatchStatus = "AUTO_CONFIRMED"
)

func (s MatchStatus) String() string { return string(s) }

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPending, MatchStatusConfirmed, MatchStatusRejected, MatchStatusAutoConfirmed:
		return true
	}
	return false
}

// IsManualOverride reports whether staff may set this status directly.
func (s MatchStatus) IsManualOverride() bool {
	return s == MatchStatusConfirmed || s == MatchStatusRejected
}

// ClaimStatus represents the lifecycle state of a claim.
type ClaimStatus string

const (
	ClaimStatusFiled                  ClaimStatus = "FILED"
	ClaimStatusIdentityProofRequested ClaimStatus = "IDENTITY_PROOF_REQUESTED"
	ClaimStatusVerified               ClaimStatus = "VERIFIED"
	ClaimStatusAwaitingTransfer       ClaimStatus = "AWAITING_TRANSFER"
	ClaimStatusAwaitingRecovery       ClaimStatus = "AWAITING_RECOVERY"
	ClaimStatusInTransit              ClaimStatus = "IN_TRANSIT"
	ClaimStatusArrived                ClaimStatus = "ARRIVED"
	ClaimStatusPickupBooked           ClaimStatus = "PICKUP_BOOKED"
	ClaimStatusReturned               ClaimStatus = "RETURNED"
	ClaimStatusRejected               ClaimStatus = "REJECTED"
	ClaimStatusCancelled              ClaimStatus = "CANCELLED"
)

func (s ClaimStatus) String() string { return string(s) }

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusFiled, ClaimStatusIdentityProofRequested, ClaimStatusVerified,
		ClaimStatusAwaitingTransfer, ClaimStatusAwaitingRecovery, ClaimStatusInTransit,
		ClaimStatusArrived, ClaimStatusPickupBooked, ClaimStatusReturned,
		ClaimStatusRejected, ClaimStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s ClaimStatus) IsTerminal() bool {
	switch s {
	case ClaimStatusReturned, ClaimStatusRejected, ClaimStatusCancelled:
		return true
	}
	return false
}

// IsVerifiedOrLater reports whether the claim has passed verification and
// therefore holds the item.
func (s ClaimStatus) IsVerifiedOrLater() bool {
	switch s {
	case ClaimStatusVerified, ClaimStatusAwaitingTransfer, ClaimStatusAwaitingRecovery,
		ClaimStatusInTransit, ClaimStatusArrived, ClaimStatusPickupBooked, ClaimStatusReturned:
		return true
	}
	return false
}

// AcceptsProof reports whether proof documents may be uploaded in this state.
func (s ClaimStatus) AcceptsProof() bool {
	return s == ClaimStatusFiled || s == ClaimStatusIdentityProofRequested
}

// ChallengeKind identifies how a challenge answer is graded.
type ChallengeKind string

const (
	ChallengeKindSecretMark ChallengeKind = "SECRET_MARK"
	ChallengeKindColor      ChallengeKind = "COLOR"
	ChallengeKindCustom     ChallengeKind = "CUSTOM"
)

func (k ChallengeKind) String() string { return string(k) }

// Role is the caller's authorization role.
type Role string

const (
	RoleUser  Role = "USER"
	RoleStaff Role = "STAFF"
	RoleAdmin Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may act on claims and matches it does not own.
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

// EntityType identifies the kind of domain entity (used in activity logs).
type EntityType string

const (
	EntityTypeItem     EntityType = "ITEM"
	EntityTypeReport   EntityType = "LOST_REPORT"
	EntityTypeMatch    EntityType = "MATCH"
	EntityTypeClaim    EntityType = "CLAIM"
	EntityTypeSettings EntityType = "SETTINGS"
)

func (e EntityType) String() string { return string(e) }

// ActivityAction is the kind of state change recorded in the activity log.
type ActivityAction string

const (
	ActivityClaimFiled         ActivityAction = "CLAIM_FILED"
	ActivityClaimRejected      ActivityAction = "CLAIM_REJECTED"
	ActivityClaimVerified      ActivityAction = "CLAIM_VERIFIED"
	ActivityClaimDeleted       ActivityAction = "CLAIM_DELETED"
	ActivityProofUploaded      ActivityAction = "PROOF_UPLOADED"
	ActivityChallengeIssued    ActivityAction = "CHALLENGE_ISSUED"
	ActivityChallengeAnswered  ActivityAction = "CHALLENGE_ANSWERED"
	ActivityMatchCreated       ActivityAction = "MATCH_CREATED"
	ActivityMatchStatusChanged ActivityAction = "MATCH_STATUS_CHANGED"
	ActivityMatchDeleted       ActivityAction = "MATCH_DELETED"
	ActivitySettingsUpdated    ActivityAction = "SETTINGS_UPDATED"
)

func (a ActivityAction) String() string { return string(a) }

// NotificationEvent is the event type handed to the notification dispatcher.
type NotificationEvent string

const (
	EventMatchAutoConfirmed  NotificationEvent = "match.auto_confirmed"
	EventMatchPotential      NotificationEvent = "match.potential"
	EventMatchConfirmed      NotificationEvent = "match.confirmed"
	EventClaimFiled          NotificationEvent = "claim.filed"
	EventClaimVerifiedFeeDue NotificationEvent = "claim.verified.fee_required"
	EventClaimRejected       NotificationEvent = "claim.rejected"
)

func (e NotificationEvent) String() string { return string(e) }

// Audience selects who a notification is addressed to.
type Audience string

const (
	AudienceUser  Audience = "USER"
	AudienceStaff Audience = "STAFF"
)
