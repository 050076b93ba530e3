// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/secret-santa/matcher"
	"github.com/danielhkuo/secret-santa/models"
	"github.com/danielhkuo/secret-santa/testutil"
)

// TestFullMatchingWorkflow tests the complete end-to-end workflow:
// 1. Add participants
// 2. Generate matches (odd count)
// 3. Delete a participant
// 4. Generate matches (even count)
func TestFullMatchingWorkflow(t *testing.T) {
	st := testutil.SetupTestStore(t)
	participantHandler := NewParticipantHandler(st)
	matchHandler := NewMatchHandler(st, matcher.NewLockedRand(2025))

	// Step 1: Add 5 participants
	names := []string{"Alice", "Bob", "Charlie", "Dana", "Eve"}
	ids := make([]int64, 0, len(names))

	for _, name := range names {
		req := testutil.MakeRequest("POST", "/participants", models.AddParticipantRequest{Name: name}, nil)
		w := httptest.NewRecorder()
		participantHandler.Add(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 1 - Add '%s' failed: %d - %s", name, w.Code, w.Body.String())
		}

		var resp models.AddParticipantResponse
		testutil.AssertJSON(t, w, &resp)
		ids = append(ids, resp.Participant.ID)
	}
	t.Logf("Step 1 - Added %d participants", len(ids))

	// Step 2: Generate with an odd count
	req := testutil.MakeRequest("GET", "/matches", nil, nil)
	w := httptest.NewRecorder()
	matchHandler.Generate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Generate failed: %d - %s", w.Code, w.Body.String())
	}

	var oddResp models.GenerateMatchesResponse
	testutil.AssertJSON(t, w, &oddResp)

	if len(oddResp.Matches) != 5 {
		t.Fatalf("Step 2 - Expected 5 entries, got %d", len(oddResp.Matches))
	}
	if oddResp.OddOneOut == nil {
		t.Fatal("Step 2 - Expected an odd-one-out")
	}
	if oddResp.Matches[*oddResp.OddOneOut] != models.Nobody {
		t.Errorf("Step 2 - Expected %s to be matched to Nobody", *oddResp.OddOneOut)
	}
	for giver, receiver := range oddResp.Matches {
		if giver == receiver {
			t.Errorf("Step 2 - %s matched to themselves", giver)
		}
	}
	t.Logf("Step 2 - Odd-one-out: %s", *oddResp.OddOneOut)

	// Step 3: Delete the first participant
	deleteID := strconv.FormatInt(ids[0], 10)
	req = testutil.MakeRequest("DELETE", "/participants/"+deleteID, nil, nil)
	req.SetPathValue("id", deleteID)
	w = httptest.NewRecorder()
	participantHandler.Delete(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 3 - Delete failed: %d - %s", w.Code, w.Body.String())
	}

	var listResp models.ListParticipantsResponse
	testutil.AssertJSON(t, w, &listResp)
	if len(listResp.Participants) != 4 {
		t.Fatalf("Step 3 - Expected 4 participants left, got %d", len(listResp.Participants))
	}

	// Step 4: Generate with an even count
	req = testutil.MakeRequest("GET", "/matches", nil, nil)
	w = httptest.NewRecorder()
	matchHandler.Generate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Generate failed: %d - %s", w.Code, w.Body.String())
	}

	var evenResp models.GenerateMatchesResponse
	testutil.AssertJSON(t, w, &evenResp)

	if evenResp.OddOneOut != nil {
		t.Errorf("Step 4 - Expected no odd-one-out, got %s", *evenResp.OddOneOut)
	}
	if _, ok := evenResp.Matches["Alice"]; ok {
		t.Error("Step 4 - Deleted participant still matched")
	}
	for giver, receiver := range evenResp.Matches {
		if receiver == models.Nobody {
			t.Errorf("Step 4 - %s matched to Nobody with an even count", giver)
		}
		if receiver == "Alice" {
			t.Errorf("Step 4 - %s matched to deleted participant", giver)
		}
	}
	t.Log("Step 4 - Even run complete")
}
