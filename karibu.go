package karibu

import (
	"github.com/moringa-school/karibu/internal/adapters/file"
	"github.com/moringa-school/karibu/pkg/dialog"
)

// Version is the current release of karibu.
const Version = "0.1.0"

// Open loads and validates the dialogue graph at path. The file extension
// selects the format: .json, .yaml, or .yml. The returned graph is immutable
// and safe to share across sessions; any structural problem (duplicate ids,
// missing start node, dangling references, malformed nodes) fails the load
// as a whole.
func Open(path string) (*dialog.Graph, error) {
	return file.Load(path)
}
