package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkampus_backend/internals/configs"
	aisvc "laporkampus_backend/internals/features/ai/service"
	"laporkampus_backend/internals/features/personnel/model"
	report "laporkampus_backend/internals/features/reports/laporan/model"
)

func testRoster() model.Roster {
	return model.Roster{
		Personnel: []model.Personnel{
			{Name: "Budi", Expertise: []string{"AC", "lampu", "toilet"}},
			{Name: "Siti", Expertise: []string{"nilai", "jadwal"}},
			{Name: "Dewi", Expertise: []string{"pelecehan"}},
		},
		Fallback: model.Personnel{Name: "Hendra", WhatsApp: "0812-000"},
	}
}

func TestMatchHighestScoreWins(t *testing.T) {
	m := NewMatcher(testRoster())
	got := m.Match(report.Report{Title: "Lampu dan AC mati", Description: "toilet juga bocor, jadwal aman"})
	assert.Equal(t, "Budi", got.Personnel.Name)
	assert.Equal(t, 3, got.Score)
	assert.False(t, got.Fallback)
}

func TestMatchTieOrZeroFallsBack(t *testing.T) {
	m := NewMatcher(testRoster())

	tie := m.Match(report.Report{Title: "Lampu kelas", Description: "jadwal berubah"})
	assert.Equal(t, "Hendra", tie.Personnel.Name)
	assert.True(t, tie.Fallback)

	none := m.Match(report.Report{Title: "Kantin mahal"})
	assert.Equal(t, "Hendra", none.Personnel.Name)
	assert.Equal(t, 0, none.Score)
}

func TestMatchFoldsCaseAndDiacritics(t *testing.T) {
	m := NewMatcher(testRoster())
	got := m.Match(report.Report{Title: "PELÉCEHAN di lorong"})
	assert.Equal(t, "Dewi", got.Personnel.Name)
}

func TestRankingCountsEveryone(t *testing.T) {
	m := NewMatcher(testRoster())
	rank := m.Ranking([]report.Report{
		{Title: "lampu mati"},
		{Title: "toilet kotor"},
		{Title: "nilai belum keluar"},
		{Title: "parkir penuh"},
	})
	require.Len(t, rank, 4)
	assert.Equal(t, model.RankEntry{Name: "Budi", Count: 2}, rank[0])

	total := 0
	for _, r := range rank {
		total += r.Count
	}
	assert.Equal(t, 4, total)
}

func TestFind(t *testing.T) {
	m := NewMatcher(testRoster())
	p, ok := m.Find("  siti ")
	require.True(t, ok)
	assert.Equal(t, "Siti", p.Name)

	_, ok = m.Find("hendra")
	assert.True(t, ok)
	_, ok = m.Find("Joko")
	assert.False(t, ok)
}

func TestDefaultRosterLoads(t *testing.T) {
	raw, err := configs.RosterYAML("")
	require.NoError(t, err)
	r, err := LoadRoster(raw)
	require.NoError(t, err)
	assert.Len(t, r.Personnel, 6)
	assert.Equal(t, "Hendra Wijaya", r.Fallback.Name)

	m := NewMatcher(r)
	assert.Equal(t, "Dewi Lestari", m.Match(report.Report{Title: "Laporan pelecehan"}).Personnel.Name)
}

func TestLoadRosterRequiresFallback(t *testing.T) {
	_, err := LoadRoster([]byte("personnel: []\n"))
	assert.Error(t, err)
}

type stubProvider struct {
	reply string
	err   error
}

func (s stubProvider) Name() string { return "stub" }
func (s stubProvider) NewChatSession(context.Context, []aisvc.Message, string) (aisvc.ChatSession, error) {
	return s, nil
}
func (s stubProvider) SendMessage(context.Context, string) (string, error) { return s.reply, s.err }

func TestLLMSuggest(t *testing.T) {
	m := NewMatcher(testRoster())
	ctx := context.Background()

	l := NewLLMMatcher(stubProvider{reply: "Berikut hasilnya:\n```json\n{\"selectedPersonnel\":\"siti\",\"confidence\":0.92,\"reason\":\"urusan nilai\"}\n```"}, m, 0.3)
	s, err := l.Suggest(ctx, report.Report{Title: "Nilai"})
	require.NoError(t, err)
	assert.Equal(t, "Siti", s.Personnel.Name)
	assert.Equal(t, 0.92, s.Confidence)
	assert.Equal(t, "llm", s.Source)

	l.Provider = stubProvider{reply: `{"selectedPersonnel":"Joko","confidence":0.9}`}
	s, err = l.Suggest(ctx, report.Report{})
	require.NoError(t, err)
	assert.Equal(t, "Hendra", s.Personnel.Name)
	assert.Equal(t, 0.3, s.Confidence)

	l.Provider = stubProvider{reply: "maaf, saya tidak yakin"}
	s, _ = l.Suggest(ctx, report.Report{})
	assert.Equal(t, "fallback", s.Source)

	l.Provider = stubProvider{err: errors.New("status 429")}
	s, err = l.Suggest(ctx, report.Report{})
	assert.Error(t, err)
	assert.Equal(t, "Hendra", s.Personnel.Name)
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink(model.Personnel{Name: "Budi", WhatsApp: "+62 812-3456"}, report.Report{Title: "AC & lampu", Category: "Fasilitas", Urgency: "High"})
	assert.True(t, strings.HasPrefix(link, "https://wa.me/628123456?text="))
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "AC%20%26%20lampu")

	assert.True(t, strings.HasPrefix(WhatsAppLink(model.Personnel{WhatsApp: "0812"}, report.Report{}), "https://wa.me/62812?"))
	assert.Empty(t, WhatsAppLink(model.Personnel{Name: "X"}, report.Report{}))
}
