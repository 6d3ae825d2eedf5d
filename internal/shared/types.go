package shared

// Task type names shared between the API (enqueue side) and the
// worker (handler side). Kept here to avoid import cycles with the
// domain packages.
const (
	TypeMatchSuitableAds = "announcement:match_suitable_ads"
	TypePurgeInactive    = "announcement:purge_inactive"
)

// Asynq queue names
const (
	QueueDefault = "default"
	QueueEmail   = "email"
)
