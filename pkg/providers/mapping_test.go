package providers

import (
	"testing"
	"time"

	"code.gitea.io/sdk/gitea"
	"github.com/google/go-github/v80/github"
	"github.com/roemer/gominutes/pkg/common"
	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2020, 5, 4, 10, 0, 0, 0, time.UTC)

func TestWorkflowRunToRawDeploy(t *testing.T) {
	assert := assert.New(t)

	run := &github.WorkflowRun{
		ID:           github.Ptr(int64(1234)),
		Name:         github.Ptr("Deploy"),
		DisplayTitle: github.Ptr("feat: y"),
		CreatedAt:    &github.Timestamp{Time: baseTime},
		RunStartedAt: &github.Timestamp{Time: baseTime.Add(8 * time.Second)},
		UpdatedAt:    &github.Timestamp{Time: baseTime.Add(130 * time.Second)},
	}
	assert.Equal(&common.RawDeploy{
		Id:         "1234",
		Title:      "feat: y",
		CreatedAt:  "2020-05-04T10:00:00Z",
		DeployTime: 122,
	}, workflowRunToRawDeploy(run))

	// Falls back to the workflow name and the creation time
	run = &github.WorkflowRun{
		ID:        github.Ptr(int64(1)),
		Name:      github.Ptr("Deploy"),
		CreatedAt: &github.Timestamp{Time: baseTime},
		UpdatedAt: &github.Timestamp{Time: baseTime.Add(42 * time.Second)},
	}
	rawDeploy := workflowRunToRawDeploy(run)
	assert.Equal("Deploy", rawDeploy.Title)
	assert.Equal(42.0, rawDeploy.DeployTime)
}

func TestStatusesToRawDeploys(t *testing.T) {
	assert := assert.New(t)

	rawDeploys := statusesToRawDeploys("fix: x", []*gitea.Status{
		{ID: 3, Context: "deploy", State: gitea.StatusSuccess, Created: baseTime.Add(42 * time.Second), Updated: baseTime.Add(42 * time.Second)},
		{ID: 1, Context: "deploy", State: gitea.StatusPending, Created: baseTime, Updated: baseTime},
		{ID: 2, Context: "build", State: gitea.StatusPending, Created: baseTime, Updated: baseTime},
		nil,
	})
	assert.Equal([]*common.RawDeploy{
		{Id: "2", Title: "fix: x [build]", CreatedAt: "2020-05-04T10:00:00Z", DeployTime: 0},
		{Id: "3", Title: "fix: x [deploy]", CreatedAt: "2020-05-04T10:00:00Z", DeployTime: 42},
	}, rawDeploys)

	assert.Empty(statusesToRawDeploys("chore: z", nil))
}

func TestPipelineTitle(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("main (0123abcd)", pipelineTitle("main", "0123abcdef456789"))
	assert.Equal("main", pipelineTitle("main", ""))
}

func TestSecondsBetween(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(42.0, secondsBetween(baseTime, baseTime.Add(42*time.Second)))
	assert.Equal(0.0, secondsBetween(baseTime.Add(time.Second), baseTime))
	assert.Equal(0.0, secondsBetween(time.Time{}, baseTime))
}
