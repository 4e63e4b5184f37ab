package consts

const (
	DefaultFeedBatchSize    = 200
	DefaultLeaderboardLimit = 10
	DefaultArchiveSpec      = "0 0 4 * * *"
)

const (
	EngagementActionLike    = "like"
	EngagementActionUnlike  = "unlike"
	EngagementActionView    = "view"
	EngagementActionComment = "comment"
)
