package reference

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/launchpost/sdkref/internal/templates"
	embeddedtmpl "github.com/launchpost/sdkref/templates"
)

func newTestEngine(t *testing.T) templates.Engine {
	t.Helper()
	engine, err := templates.NewEngine(embeddedtmpl.FS, "")
	require.NoError(t, err)
	return engine
}

func TestRenderSingleResource(t *testing.T) {
	ref := &Reference{Resources: []Resource{
		{
			Key:         "Posts",
			DisplayName: "Posts",
			Methods: []Method{
				{Name: "ListPosts", Description: "List all posts"},
			},
		},
	}}

	got, err := Render(newTestEngine(t), ref)
	require.NoError(t, err)

	expected := "## SDK Reference\n" +
		"\n" +
		"### Posts\n" +
		"| Method | Description |\n" +
		"|--------|-------------|\n" +
		"| `client.ListPostsWithResponse()` | List all posts |\n"
	require.Equal(t, expected, got)
}

func TestRenderMultipleResources(t *testing.T) {
	ref := &Reference{Resources: []Resource{
		{
			Key:         "Posts",
			DisplayName: "Posts",
			Methods: []Method{
				{Name: "ListPosts", Description: "List all posts"},
				{Name: "CreatePost", Description: "Create a post"},
			},
		},
		{
			Key:         "Connect",
			DisplayName: "Connect (OAuth)",
			Methods: []Method{
				{Name: "StartConnect", Description: "Start an OAuth flow"},
			},
		},
	}}

	got, err := Render(newTestEngine(t), ref)
	require.NoError(t, err)

	expected := "## SDK Reference\n" +
		"\n" +
		"### Posts\n" +
		"| Method | Description |\n" +
		"|--------|-------------|\n" +
		"| `client.ListPostsWithResponse()` | List all posts |\n" +
		"| `client.CreatePostWithResponse()` | Create a post |\n" +
		"\n" +
		"### Connect (OAuth)\n" +
		"| Method | Description |\n" +
		"|--------|-------------|\n" +
		"| `client.StartConnectWithResponse()` | Start an OAuth flow |\n"
	require.Equal(t, expected, got)
}

func TestRenderSkipsEmptyResources(t *testing.T) {
	ref := &Reference{Resources: []Resource{
		{Key: "Ghost", DisplayName: "Ghost"},
	}}

	got, err := Render(newTestEngine(t), ref)
	require.NoError(t, err)
	require.Equal(t, "## SDK Reference\n", got)
}

func TestRenderEmitsDescriptionsVerbatim(t *testing.T) {
	// Pipes in summaries corrupt the table layout. That matches the
	// published output, so no escaping happens here.
	ref := &Reference{Resources: []Resource{
		{
			Key:         "Posts",
			DisplayName: "Posts",
			Methods: []Method{
				{Name: "ListPosts", Description: "List | count posts"},
			},
		},
	}}

	got, err := Render(newTestEngine(t), ref)
	require.NoError(t, err)
	require.Contains(t, got, "| `client.ListPostsWithResponse()` | List | count posts |\n")
}
