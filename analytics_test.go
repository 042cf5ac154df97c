package main

import "testing"

func TestAnalyticsTrackAndFlush(t *testing.T) {
	db := newTestDB(t)
	a := NewAnalytics(db)

	a.Track(EvtGameOver, 1, "s1", `{"score":100,"wave":3}`)
	a.Track(EvtGameOver, 2, "s1", `{"score":300,"wave":5}`)
	a.Stop() // drains and flushes

	counts, err := a.EventCounts(1)
	if err != nil {
		t.Fatalf("event counts: %v", err)
	}
	if counts[EvtGameOver] != 2 {
		t.Errorf("expected 2 game_over events, got %d", counts[EvtGameOver])
	}

	runs, err := a.RunStats(1)
	if err != nil {
		t.Fatalf("run stats: %v", err)
	}
	if runs.Count != 2 {
		t.Errorf("expected 2 runs, got %d", runs.Count)
	}
	if runs.AvgScore != 200 {
		t.Errorf("expected average score 200, got %f", runs.AvgScore)
	}
	if runs.MaxScore != 300 {
		t.Errorf("expected max score 300, got %d", runs.MaxScore)
	}
	if runs.AvgWave != 4 {
		t.Errorf("expected average wave 4, got %f", runs.AvgWave)
	}
}

func TestAnalyticsPopularPowerups(t *testing.T) {
	db := newTestDB(t)
	a := NewAnalytics(db)

	a.Track(EvtPowerup, 1, "s1", `{"kind":"health"}`)
	a.Track(EvtPowerup, 1, "s1", `{"kind":"health"}`)
	a.Track(EvtPowerup, 2, "s1", `{"kind":"shield"}`)
	a.Stop()

	kinds, err := a.PopularPowerups(5)
	if err != nil {
		t.Fatalf("popular powerups: %v", err)
	}
	if len(kinds) != 2 {
		t.Fatalf("expected 2 kinds, got %d", len(kinds))
	}
	if kinds[0].Kind != "health" || kinds[0].Count != 2 {
		t.Errorf("expected health first with 2 pickups, got %+v", kinds[0])
	}
}

func TestAnalyticsActiveCounts(t *testing.T) {
	db := newTestDB(t)
	a := NewAnalytics(db)

	a.Track(EvtLogin, 7, "", "")
	a.Track(EvtLogin, 8, "", "")
	a.Track(EvtSessionStart, 0, "s1", "") // no player attached
	a.Stop()

	dau, err := a.DAUCount()
	if err != nil {
		t.Fatalf("dau: %v", err)
	}
	if dau != 2 {
		t.Errorf("expected 2 active players today, got %d", dau)
	}

	wau, _ := a.WAUCount()
	mau, _ := a.MAUCount()
	if wau != 2 || mau != 2 {
		t.Errorf("expected weekly and monthly counts of 2, got %d and %d", wau, mau)
	}

	history, err := a.DailyActiveHistory(7)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Count != 2 {
		t.Errorf("expected one day with 2 players, got %+v", history)
	}
}

func TestAnalyticsLiveMetrics(t *testing.T) {
	a := NewAnalytics(nil)
	defer a.Stop()

	a.SetConcurrentPeers(7)
	a.SetActiveSessions(3)

	peers, sessions := a.GetLiveMetrics()
	if peers != 7 || sessions != 3 {
		t.Errorf("expected live metrics 7/3, got %d/%d", peers, sessions)
	}
}

func TestAnalyticsWithoutDB(t *testing.T) {
	a := NewAnalytics(nil)
	a.Track(EvtLogin, 1, "", "")
	a.Stop()

	if n, err := a.DAUCount(); n != 0 || err != nil {
		t.Errorf("expected zero DAU without a database, got %d, %v", n, err)
	}
	if runs, err := a.RunStats(7); runs != nil || err != nil {
		t.Errorf("expected nil run stats without a database, got %+v, %v", runs, err)
	}
}
