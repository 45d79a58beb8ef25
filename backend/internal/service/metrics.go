package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	likeToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_comment_like_toggles_total",
			Help: "Comment like toggles by resulting action",
		},
		[]string{"action"},
	)

	contentDeletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_content_deletions_total",
			Help: "Soft deletions of comments and replies",
		},
		[]string{"kind"},
	)
)
