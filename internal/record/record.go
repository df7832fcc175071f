// Package record defines the endpoint record shown by the table and loads record files.
package record

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kwargs holds optional keyword arguments attached to an endpoint.
type Kwargs struct {
	MinRole *int `json:"min_role,omitempty" yaml:"min_role,omitempty"`
}

// Record is a single endpoint row.
type Record struct {
	Name        string `json:"name"          yaml:"name"`
	ServiceName string `json:"service_name"  yaml:"service_name"`
	Endpoint    string `json:"endpoint"      yaml:"endpoint"`
	RestAction  string `json:"rest_action"   yaml:"rest_action"`
	RPCQueue    string `json:"rpc_queue"     yaml:"rpc_queue"`
	HTTPCommand string `json:"http_command"  yaml:"http_command"`
	Kwargs      Kwargs `json:"kwargs"        yaml:"kwargs"`
}

// FilterName returns the name used for filtering. A nil record has an empty name.
func (r *Record) FilterName() string {
	if r == nil {
		return ""
	}
	return r.Name
}

// MinRoleString returns the minimum role as text, or "" when unset.
func (r *Record) MinRoleString() string {
	if r == nil || r.Kwargs.MinRole == nil {
		return ""
	}
	return strconv.Itoa(*r.Kwargs.MinRole)
}

// Columns are the table headers in display order.
//
//nolint:gochecknoglobals // Read-only header list shared by every renderer.
var Columns = []string{"Name", "Endpoint", "Service", "Queue", "Security", "HttpCommands"}

// Cells returns the display values of r in Columns order.
func (r *Record) Cells() []string {
	if r == nil {
		return make([]string, len(Columns))
	}
	return []string{r.Name, r.Endpoint, r.ServiceName, r.RPCQueue, r.RestAction, r.HTTPCommand}
}

// wireRecord mirrors Record but accepts any name value so a malformed name
// decodes as empty instead of failing the whole file.
type wireRecord struct {
	Name        any    `json:"name"         yaml:"name"`
	ServiceName string `json:"service_name" yaml:"service_name"`
	Endpoint    string `json:"endpoint"     yaml:"endpoint"`
	RestAction  string `json:"rest_action"  yaml:"rest_action"`
	RPCQueue    string `json:"rpc_queue"    yaml:"rpc_queue"`
	HTTPCommand string `json:"http_command" yaml:"http_command"`
	Kwargs      Kwargs `json:"kwargs"       yaml:"kwargs"`
}

func (w wireRecord) record() Record {
	name, _ := w.Name.(string)
	return Record{
		Name:        name,
		ServiceName: w.ServiceName,
		Endpoint:    w.Endpoint,
		RestAction:  w.RestAction,
		RPCQueue:    w.RPCQueue,
		HTTPCommand: w.HTTPCommand,
		Kwargs:      w.Kwargs,
	}
}

// UnmarshalJSON decodes a record, treating a missing or non-string name as "".
func (r *Record) UnmarshalJSON(data []byte) error {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = w.record()
	return nil
}

// UnmarshalYAML decodes a record, treating a missing or non-string name as "".
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	var w wireRecord
	if err := node.Decode(&w); err != nil {
		return err
	}
	*r = w.record()
	return nil
}
