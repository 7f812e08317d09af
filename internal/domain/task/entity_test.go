package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_SetStatus_CompletedAt(t *testing.T) {
	t1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	var tk Task
	assert.Equal(t, StatusPending, tk.EffectiveStatus())

	tk.SetStatus(StatusInProgress, t1)
	assert.Nil(t, tk.CompletedAt)
	require.NotNil(t, tk.StatusUpdatedAt)
	assert.Equal(t, t1, *tk.StatusUpdatedAt)

	tk.SetStatus(StatusCompleted, t2)
	require.NotNil(t, tk.CompletedAt)
	assert.Equal(t, t2, *tk.CompletedAt)

	tk.SetStatus(StatusInProgress, t3)
	assert.Nil(t, tk.CompletedAt, "leaving completed clears completedAt")
	assert.Equal(t, t3, *tk.StatusUpdatedAt)
}

func TestTally(t *testing.T) {
	tasks := []Task{
		{Status: ""},
		{Status: StatusPending},
		{Status: StatusInProgress},
		{Status: StatusCompleted},
		{Status: StatusCompleted},
	}
	assert.Equal(t, Stats{Total: 5, Pending: 2, InProgress: 1, Completed: 2}, Tally(tasks))
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateStatusRequest{Status: StatusCompleted}).Validate())
	assert.Error(t, (&UpdateStatusRequest{Status: "done"}).Validate())
	assert.Error(t, (&UpdateStatusRequest{}).Validate())
}

func TestTask_BrowserDocument(t *testing.T) {
	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"id":1741597200000,"memberId":1741500000000,"memberName":"Sara",
		"type":"report","details":"weekly","assignedBy":"Omar","date":1741597200000,
		"status":"completed","statusUpdatedAt":1741600800000,"completedAt":1741600800000}`), &task))

	assert.Equal(t, "1741597200000", task.ID)
	assert.Equal(t, "1741500000000", task.MemberID)
	assert.True(t, task.Date.Equal(time.UnixMilli(1741597200000)))
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.Equal(time.UnixMilli(1741600800000)))
	assert.Equal(t, StatusCompleted, task.EffectiveStatus())

	var pending Task
	require.NoError(t, json.Unmarshal([]byte(`{"id":"t1","memberId":"m1","date":"2025-03-10T09:00:00Z"}`), &pending))
	assert.Nil(t, pending.StatusUpdatedAt)
	assert.Nil(t, pending.CompletedAt)
	assert.Equal(t, StatusPending, pending.EffectiveStatus())
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	err := (&CreateTaskRequest{MemberID: " ", Type: ""}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memberId is required")
	assert.Contains(t, err.Error(), "type is required")

	assert.NoError(t, (&CreateTaskRequest{MemberID: "m1", Type: "report"}).Validate())
}
