package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/d60-Lab/futsalero/internal/model"
	"github.com/d60-Lab/futsalero/pkg/errorx"
)

func codesOf(entries []RankEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Code
	}
	return out
}

func TestSortRankingTieBreak(t *testing.T) {
	entries := []RankEntry{
		{Code: "AAA1111", Score: 10, Matches: 1},
		{Code: "BBB2222", Score: 10, Matches: 3},
		{Code: "CCC3333", Score: 12, Matches: 1},
		{Code: "DDD4444", Score: 10, Matches: 3},
	}
	SortRanking(entries)
	assert.Equal(t, []string{"CCC3333", "BBB2222", "DDD4444", "AAA1111"}, codesOf(entries))
}

func (s *serviceSuite) TestRankScenario() {
	a := s.player("AAA1111")
	b := s.player("BBB2222")
	c := s.player("CCC3333")
	s.record(a, model.CategoryLocal, 10)
	s.record(a, model.CategoryLocal, 15)
	s.record(c, model.CategoryLocal, 20)
	s.record(c, model.CategoryProvincial, 100)

	for i := 0; i < 3; i++ {
		_, err := s.social.Follow(s.ctx, b, a)
		s.Require().NoError(err)
	}

	entries, err := s.ranking.Rank(s.ctx, "LOCAL", "global", "")
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("AAA1111", entries[0].Code)
	s.Equal(int64(26), entries[0].Score)
	s.Equal(int64(2), entries[0].Matches)
	s.Equal("user-AAA1111", entries[0].Username)
	s.Equal("CCC3333", entries[1].Code)
	s.Equal(int64(20), entries[1].Score)
}

func (s *serviceSuite) TestRankWithMaximumStats() {
	a := s.player("AAA1111")
	b := s.player("BBB2222")
	fan := s.player("FAN1000")
	s.record(a, model.CategoryLocal, MaxStatValue)
	s.record(a, model.CategoryLocal, MaxStatValue)
	s.record(b, model.CategoryLocal, 1)
	_, err := s.social.Follow(s.ctx, fan, a)
	s.Require().NoError(err)

	_, err = s.matches.RecordMatch(s.ctx, b, "LOCAL", MatchStats{Points: math.MaxInt64})
	s.True(errorx.Is(err, errorx.InvalidStats))

	entries, err := s.ranking.Rank(s.ctx, "LOCAL", "global", "")
	s.Require().NoError(err)
	s.Equal([]string{a, b}, codesOf(entries))
	s.Equal(int64(2*MaxStatValue+1), entries[0].Score)
	s.Equal(int64(1), entries[1].Score)
}

func (s *serviceSuite) TestRankScoreIsSumPlusBonus() {
	codes := s.players(5)
	points := map[string]int64{}
	for i, code := range codes {
		for j := 0; j <= i; j++ {
			s.record(code, model.CategoryAutonomica, int64(j*3))
			points[code] += int64(j * 3)
		}
	}
	for _, f := range codes[1:] {
		_, err := s.social.Follow(s.ctx, f, codes[0])
		s.Require().NoError(err)
	}
	points[codes[0]] += int64(len(codes) - 1)

	entries, err := s.ranking.Rank(s.ctx, "AUTONOMICA", "global", "")
	s.Require().NoError(err)
	s.Require().Len(entries, len(codes))
	for _, e := range entries {
		s.Equal(points[e.Code], e.Score, e.Code)
	}
	for i := 1; i < len(entries); i++ {
		s.GreaterOrEqual(entries[i-1].Score, entries[i].Score)
	}
}

func (s *serviceSuite) TestRankTieBreakByMatches() {
	a := s.player("AAA1111")
	b := s.player("BBB2222")
	s.record(a, model.CategoryLocal, 10)
	s.record(b, model.CategoryLocal, 4)
	s.record(b, model.CategoryLocal, 6)

	entries, err := s.ranking.Rank(s.ctx, "LOCAL", "global", "")
	s.Require().NoError(err)
	s.Equal([]string{"BBB2222", "AAA1111"}, codesOf(entries))
}

func (s *serviceSuite) TestRankIsDeterministic() {
	for _, code := range []string{"DDD4444", "AAA1111", "CCC3333", "BBB2222"} {
		s.player(code)
		s.record(code, model.CategoryLocal, 5)
	}

	first, err := s.ranking.Rank(s.ctx, "LOCAL", "global", "")
	s.Require().NoError(err)
	for i := 0; i < 5; i++ {
		again, err := s.ranking.Rank(s.ctx, "LOCAL", "global", "")
		s.Require().NoError(err)
		s.Equal(codesOf(first), codesOf(again))
	}
	s.Equal([]string{"AAA1111", "BBB2222", "CCC3333", "DDD4444"}, codesOf(first))
}

func (s *serviceSuite) TestRankFriendsIsOrderedSubset() {
	viewer := s.player("VVV1000")
	codes := []string{"AAA1111", "BBB2222", "CCC3333", "DDD4444", "EEE5555"}
	for i, code := range codes {
		s.player(code)
		s.record(code, model.CategoryLocal, int64(10*(i%3)))
	}
	for _, code := range []string{"EEE5555", "BBB2222", "CCC3333"} {
		_, err := s.social.Follow(s.ctx, viewer, code)
		s.Require().NoError(err)
	}
	// 反向关注不算 viewer 的好友
	_, err := s.social.Follow(s.ctx, "AAA1111", viewer)
	s.Require().NoError(err)

	global, err := s.ranking.Rank(s.ctx, "LOCAL", "global", viewer)
	s.Require().NoError(err)
	friends, err := s.ranking.Rank(s.ctx, "LOCAL", "friends", viewer)
	s.Require().NoError(err)

	var expected []string
	for _, e := range global {
		switch e.Code {
		case "EEE5555", "BBB2222", "CCC3333":
			expected = append(expected, e.Code)
		}
	}
	s.Equal(expected, codesOf(friends))
}

func (s *serviceSuite) TestRankScopeIsPermissive() {
	a := s.player("AAA1111")
	s.record(a, model.CategoryLocal, 1)

	for _, tc := range []struct{ scope, viewer string }{
		{"friends", "not-a-code"},
		{"friends", ""},
		{"everyone", "AAA1111"},
	} {
		entries, err := s.ranking.Rank(s.ctx, "LOCAL", tc.scope, tc.viewer)
		s.Require().NoError(err)
		s.Len(entries, 1, tc.scope+"/"+tc.viewer)
	}

	entries, err := s.ranking.Rank(s.ctx, "LOCAL", "FRIENDS", "ZZZ9999")
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *serviceSuite) TestRankRejectsUnknownCategory() {
	_, err := s.ranking.Rank(s.ctx, "MUNDIAL", "global", "")
	s.True(errorx.Is(err, errorx.InvalidCategory))
}

func (s *serviceSuite) TestRankEmptyCategory() {
	entries, err := s.ranking.Rank(s.ctx, "SELECCION_ESPANOLA", "global", "")
	s.Require().NoError(err)
	s.NotNil(entries)
	s.Empty(entries)
}

func (s *serviceSuite) TestStanding() {
	a := s.player("AAA1111")
	b := s.player("BBB2222")

	st, err := s.ranking.Standing(s.ctx, "LOCAL", a)
	s.Require().NoError(err)
	s.Equal(int64(0), st.Score)
	s.Equal(int64(0), st.Matches)

	s.record(a, model.CategoryLocal, 8)
	_, err = s.social.Follow(s.ctx, b, a)
	s.Require().NoError(err)

	st, err = s.ranking.Standing(s.ctx, "LOCAL", a)
	s.Require().NoError(err)
	s.Equal(int64(9), st.Score)
	s.Equal(int64(1), st.Matches)

	_, err = s.ranking.Standing(s.ctx, "LOCAL", "ZZZ9999")
	s.True(errorx.Is(err, errorx.NotFound))
}
