package consts

const (
	PostEngagementKey = "post:engagement:"
)
