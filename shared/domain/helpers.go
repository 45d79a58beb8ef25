package domain

import (
	"fmt"
	"time"
)

// for debug
func (c *CommentView) String() string {
	s := fmt.Sprintf("[id:%s, username:%s, date:%s, likes:%d, content:%s, replies:[", c.Id, c.Username, c.Date.Format(time.StampMilli), c.LikeCount, c.Content)
	for i, r := range c.Replies {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%+v", r)
	}
	return s + "]]"
}

func (t *ThreadView) String() string {
	s := fmt.Sprintf("[id:%s, title:%s, username:%s, date:%s, comments:[", t.Id, t.Title, t.Username, t.Date.Format(time.StampMilli))
	for i := range t.Comments {
		if i > 0 {
			s += ", "
		}
		s += t.Comments[i].String()
	}
	return s + "]]\n"
}
