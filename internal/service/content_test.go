package service

import (
	"math"
	"strings"

	"github.com/d60-Lab/futsalero/internal/model"
	"github.com/d60-Lab/futsalero/pkg/errorx"
)

func (s *serviceSuite) post(author string) uint64 {
	s.T().Helper()
	p, err := s.content.CreatePost(s.ctx, author, "gran partido hoy", nil)
	s.Require().NoError(err)
	return p.ID
}

func (s *serviceSuite) TestCreatePost() {
	author := s.player("AAA1111")
	matchID := s.record(author, model.CategoryLocal, 5)

	p, err := s.content.CreatePost(s.ctx, author, "  hat-trick  ", &matchID)
	s.Require().NoError(err)
	s.Equal("hat-trick", p.Body)
	s.Require().NotNil(p.MatchID)
	s.Equal(matchID, *p.MatchID)

	missing := uint64(999)
	_, err = s.content.CreatePost(s.ctx, author, "x", &missing)
	s.True(errorx.Is(err, errorx.NotFound))

	_, err = s.content.CreatePost(s.ctx, author, "   ", nil)
	s.True(errorx.Is(err, errorx.PostEmpty))

	_, err = s.content.CreatePost(s.ctx, "ZZZ9999", "hola", nil)
	s.True(errorx.Is(err, errorx.NotFound))
}

func (s *serviceSuite) TestListPostsNewestFirst() {
	author := s.player("AAA1111")
	first := s.post(author)
	second := s.post(author)

	posts, err := s.content.ListPosts(s.ctx, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(posts, 2)
	s.Equal(second, posts[0].ID)
	s.Equal(first, posts[1].ID)
}

func (s *serviceSuite) TestCommentLengthBoundary() {
	author := s.player("AAA1111")
	postID := s.post(author)

	_, err := s.content.AddComment(s.ctx, postID, author, strings.Repeat("a", 140))
	s.NoError(err)

	_, err = s.content.AddComment(s.ctx, postID, author, strings.Repeat("a", 141))
	s.True(errorx.Is(err, errorx.CommentTooLong))

	// 按字符而不是字节计数
	_, err = s.content.AddComment(s.ctx, postID, author, strings.Repeat("ñ", 140))
	s.NoError(err)

	_, err = s.content.AddComment(s.ctx, postID, author, " \t\n ")
	s.True(errorx.Is(err, errorx.CommentEmpty))

	comments, err := s.content.ListComments(s.ctx, postID)
	s.Require().NoError(err)
	s.Len(comments, 2)
}

func (s *serviceSuite) TestCommentsOldestFirst() {
	author := s.player("AAA1111")
	postID := s.post(author)
	for _, text := range []string{"uno", "dos", "tres"} {
		_, err := s.content.AddComment(s.ctx, postID, author, text)
		s.Require().NoError(err)
	}

	comments, err := s.content.ListComments(s.ctx, postID)
	s.Require().NoError(err)
	s.Require().Len(comments, 3)
	s.Equal("uno", comments[0].Text)
	s.Equal("tres", comments[2].Text)

	_, err = s.content.AddComment(s.ctx, 424242, author, "hola")
	s.True(errorx.Is(err, errorx.NotFound))
}

func (s *serviceSuite) TestVoteOverwrites() {
	author := s.player("AAA1111")
	voter := s.player("BBB2222")
	postID := s.post(author)

	tally, err := s.content.Vote(s.ctx, postID, voter, true)
	s.Require().NoError(err)
	s.Equal(model.VoteTally{True: 1, False: 0}, tally)

	tally, err = s.content.Vote(s.ctx, postID, voter, false)
	s.Require().NoError(err)
	s.Equal(model.VoteTally{True: 0, False: 1}, tally)

	tally, err = s.content.Vote(s.ctx, postID, author, false)
	s.Require().NoError(err)
	s.Equal(model.VoteTally{True: 0, False: 2}, tally)

	counts, err := s.content.VoteCounts(s.ctx, postID)
	s.Require().NoError(err)
	s.Equal(tally, counts)
}

func (s *serviceSuite) TestVoteUnknownPost() {
	voter := s.player("BBB2222")
	_, err := s.content.Vote(s.ctx, 77, voter, true)
	s.True(errorx.Is(err, errorx.NotFound))

	_, err = s.content.VoteCounts(s.ctx, 77)
	s.True(errorx.Is(err, errorx.NotFound))
}

func (s *serviceSuite) TestOutOfRangePostIDIsNotFound() {
	author := s.player("AAA1111")
	huge := uint64(math.MaxUint64)

	_, err := s.content.Vote(s.ctx, huge, author, true)
	s.True(errorx.Is(err, errorx.NotFound), "%v", err)
	_, err = s.content.VoteCounts(s.ctx, huge)
	s.True(errorx.Is(err, errorx.NotFound), "%v", err)
	_, err = s.content.AddComment(s.ctx, huge, author, "hola")
	s.True(errorx.Is(err, errorx.NotFound), "%v", err)
	_, err = s.content.ListComments(s.ctx, huge)
	s.True(errorx.Is(err, errorx.NotFound), "%v", err)
	_, err = s.content.Report(s.ctx, huge, author)
	s.True(errorx.Is(err, errorx.NotFound), "%v", err)
	_, err = s.content.CreatePost(s.ctx, author, "x", &huge)
	s.True(errorx.Is(err, errorx.NotFound), "%v", err)
}

func (s *serviceSuite) TestDuplicateReportCountsOnce() {
	author := s.player("AAA1111")
	reporter := s.player("BBB2222")
	postID := s.post(author)

	res, err := s.content.Report(s.ctx, postID, reporter)
	s.Require().NoError(err)
	s.Equal(ModerationResult{Removed: false, Reports: 1}, res)

	res, err = s.content.Report(s.ctx, postID, reporter)
	s.Require().NoError(err)
	s.Equal(ModerationResult{Removed: false, Reports: 1}, res)
}

func (s *serviceSuite) seedPostWithChildren() (uint64, []string) {
	author := s.player("AAA1111")
	postID := s.post(author)
	reporters := s.players(ReportThreshold)
	for _, r := range reporters[:3] {
		_, err := s.content.AddComment(s.ctx, postID, r, "comentario")
		s.Require().NoError(err)
		_, err = s.content.Vote(s.ctx, postID, r, true)
		s.Require().NoError(err)
	}
	return postID, reporters
}

func (s *serviceSuite) TestReportBelowThresholdKeepsPost() {
	postID, reporters := s.seedPostWithChildren()

	for _, r := range reporters[:ReportThreshold-1] {
		res, err := s.content.Report(s.ctx, postID, r)
		s.Require().NoError(err)
		s.False(res.Removed)
	}

	_, err := s.store.Posts.Get(s.ctx, postID)
	s.Require().NoError(err)
	comments, err := s.content.ListComments(s.ctx, postID)
	s.Require().NoError(err)
	s.Len(comments, 3)
	tally, err := s.content.VoteCounts(s.ctx, postID)
	s.Require().NoError(err)
	s.Equal(int64(3), tally.True)
	n, err := s.store.Reports.Count(s.ctx, postID)
	s.Require().NoError(err)
	s.Equal(int64(ReportThreshold-1), n)
}

func (s *serviceSuite) TestReportThresholdCascades() {
	postID, reporters := s.seedPostWithChildren()
	other := s.post("AAA1111")
	_, err := s.content.AddComment(s.ctx, other, reporters[0], "sigue aquí")
	s.Require().NoError(err)

	var last ModerationResult
	for _, r := range reporters {
		last, err = s.content.Report(s.ctx, postID, r)
		s.Require().NoError(err)
	}
	s.True(last.Removed)
	s.Equal(int64(ReportThreshold), last.Reports)

	_, err = s.content.ListComments(s.ctx, postID)
	s.True(errorx.Is(err, errorx.NotFound))
	_, err = s.content.VoteCounts(s.ctx, postID)
	s.True(errorx.Is(err, errorx.NotFound))
	_, err = s.content.Vote(s.ctx, postID, reporters[0], true)
	s.True(errorx.Is(err, errorx.NotFound))
	_, err = s.content.Report(s.ctx, postID, reporters[0])
	s.True(errorx.Is(err, errorx.NotFound))

	for _, table := range []any{&model.Comment{}, &model.Vote{}, &model.Report{}} {
		var n int64
		s.Require().NoError(s.db.Model(table).Where("post_id = ?", postID).Count(&n).Error)
		s.Zero(n)
	}

	// 其他动态不受影响
	comments, err := s.content.ListComments(s.ctx, other)
	s.Require().NoError(err)
	s.Len(comments, 1)
}

func (s *serviceSuite) TestModerationApplyBelowThresholdIsNoop() {
	author := s.player("AAA1111")
	postID := s.post(author)

	res, err := NewModerationPolicy().Apply(s.ctx, s.store, postID, ReportThreshold-1)
	s.Require().NoError(err)
	s.False(res.Removed)

	res, err = NewModerationPolicy().Apply(s.ctx, s.store, postID, ReportThreshold)
	s.Require().NoError(err)
	s.True(res.Removed)

	_, err = NewModerationPolicy().Apply(s.ctx, s.store, postID, ReportThreshold)
	s.True(errorx.Is(err, errorx.NotFound))
}

func (s *serviceSuite) TestCascadeRollsBackOnFailure() {
	postID, reporters := s.seedPostWithChildren()
	for _, r := range reporters[:ReportThreshold-1] {
		_, err := s.content.Report(s.ctx, postID, r)
		s.Require().NoError(err)
	}

	// 删除 posts 时失败：前面删掉的评论、投票、举报必须回滚
	s.Require().NoError(s.db.Exec(`CREATE TRIGGER block_post_delete BEFORE DELETE ON posts
		BEGIN SELECT RAISE(ABORT, 'blocked'); END`).Error)

	_, err := s.content.Report(s.ctx, postID, reporters[ReportThreshold-1])
	s.True(errorx.Is(err, errorx.StorageFailure))

	s.Require().NoError(s.db.Exec(`DROP TRIGGER block_post_delete`).Error)

	comments, err := s.content.ListComments(s.ctx, postID)
	s.Require().NoError(err)
	s.Len(comments, 3)
	tally, err := s.content.VoteCounts(s.ctx, postID)
	s.Require().NoError(err)
	s.Equal(int64(3), tally.True)
	n, err := s.store.Reports.Count(s.ctx, postID)
	s.Require().NoError(err)
	s.Equal(int64(ReportThreshold-1), n)
}
