package model

// ChannelStats summarises one channel for its dashboard.
type ChannelStats struct {
	TotalVideos     int64  `json:"totalVideos"`
	TotalLikes      int64  `json:"totalLikes"`
	TotalSubs       int64  `json:"totalSubs"`
	TotalViews      int64  `json:"totalViews"`
	ChannelName     string `json:"channelName"`
	Logo            string `json:"logo"`
	MostViewedVideo *Video `json:"mostViewedVideo"`
}
