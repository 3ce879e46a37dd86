package service

import (
	"sync"

	"github.com/d60-Lab/futsalero/internal/model"
	"github.com/d60-Lab/futsalero/pkg/errorx"
)

func (s *serviceSuite) TestFollowIsIdempotent() {
	target := s.player("AAA1111")
	follower := s.player("BBB2222")

	created, err := s.social.Follow(s.ctx, follower, target)
	s.Require().NoError(err)
	s.True(created)

	created, err = s.social.Follow(s.ctx, follower, target)
	s.Require().NoError(err)
	s.False(created)

	s.Equal(int64(1), s.bonus(target))
	s.Equal(int64(0), s.bonus(follower))
}

func (s *serviceSuite) TestFollowIsDirected() {
	a := s.player("AAA1111")
	b := s.player("BBB2222")

	_, err := s.social.Follow(s.ctx, a, b)
	s.Require().NoError(err)
	_, err = s.social.Follow(s.ctx, b, a)
	s.Require().NoError(err)

	s.Equal(int64(1), s.bonus(a))
	s.Equal(int64(1), s.bonus(b))
}

func (s *serviceSuite) TestFollowValidation() {
	a := s.player("AAA1111")

	_, err := s.social.Follow(s.ctx, a, a)
	s.True(errorx.Is(err, errorx.SelfFollow))

	_, err = s.social.Follow(s.ctx, a, "aaa1111")
	s.True(errorx.Is(err, errorx.InvalidIdentity))

	_, err = s.social.Follow(s.ctx, "AAA11", a)
	s.True(errorx.Is(err, errorx.InvalidIdentity))
}

func (s *serviceSuite) TestFollowUnknownTargetLeavesNoEdge() {
	a := s.player("AAA1111")

	_, err := s.social.Follow(s.ctx, a, "ZZZ9999")
	s.True(errorx.Is(err, errorx.NotFound))

	var n int64
	s.Require().NoError(s.db.Model(&model.Follow{}).Where("follower_code = ?", a).Count(&n).Error)
	s.Zero(n)
}

func (s *serviceSuite) TestConcurrentDuplicateFollowsCountOnce() {
	target := s.player("AAA1111")
	follower := s.player("BBB2222")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.social.Follow(s.ctx, follower, target)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}
	s.Equal(int64(1), s.bonus(target))
}

func (s *serviceSuite) TestConcurrentDistinctFollowers() {
	target := s.player("AAA1111")
	followers := s.players(12)

	var wg sync.WaitGroup
	for _, f := range followers {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			_, err := s.social.Follow(s.ctx, code, target)
			s.NoError(err)
		}(f)
	}
	wg.Wait()

	s.Equal(int64(len(followers)), s.bonus(target))
	var n int64
	s.Require().NoError(s.db.Model(&model.Follow{}).Where("target_code = ?", target).Count(&n).Error)
	s.Equal(int64(len(followers)), n)
}

func (s *serviceSuite) TestFollowing() {
	viewer := s.player("VVV1000")
	s.player("BBB2222")
	s.player("AAA1111")

	_, err := s.social.Follow(s.ctx, viewer, "BBB2222")
	s.Require().NoError(err)
	_, err = s.social.Follow(s.ctx, viewer, "AAA1111")
	s.Require().NoError(err)

	codes, err := s.social.Following(s.ctx, viewer)
	s.Require().NoError(err)
	s.Equal([]string{"AAA1111", "BBB2222"}, codes)

	codes, err = s.social.Following(s.ctx, "AAA1111")
	s.Require().NoError(err)
	s.Empty(codes)

	_, err = s.social.Following(s.ctx, "QQQ1234")
	s.True(errorx.Is(err, errorx.NotFound))
}

func (s *serviceSuite) TestFollowBonusCountsTowardsRanking() {
	target := s.player("AAA1111")
	s.record(target, model.CategoryLocal, 3)
	for _, f := range s.players(4) {
		_, err := s.social.Follow(s.ctx, f, target)
		s.Require().NoError(err)
	}

	entries, err := s.ranking.Rank(s.ctx, "LOCAL", "global", "")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(int64(7), entries[0].Score)
}
