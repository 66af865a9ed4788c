package sysinfo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeonsage/colabcheck/pkg/check"
	"github.com/aeonsage/colabcheck/pkg/probe"
)

type recorder struct {
	results []check.Result
}

func (r *recorder) Record(res check.Result) { r.results = append(r.results, res) }

func (r *recorder) byID(id check.ID) (check.Result, bool) {
	for _, res := range r.results {
		if res.ID == id {
			return res, true
		}
	}
	return check.Result{}, false
}

type mockHost struct {
	version  string
	platform string
	os       string
	arch     string
	bits     int
}

func (m *mockHost) RuntimeVersion() string { return m.version }
func (m *mockHost) Platform() string       { return m.platform }
func (m *mockHost) OS() string             { return m.os }
func (m *mockHost) Arch() string           { return m.arch }
func (m *mockHost) BitWidth() int          { return m.bits }

type mockEnv struct {
	vars map[string]string
}

func (m *mockEnv) LookupEnv(key string) (string, bool) {
	v, ok := m.vars[key]
	return v, ok
}

const dfOutput = "Filesystem      Size  Used Avail Use% Mounted on\n/dev/root        50G   20G   28G  42% /"

func testChecks(env map[string]string, df probe.Outcome) *Checks {
	return &Checks{
		Env: &mockEnv{vars: env},
		Probe: &probe.MockRunner{
			RunFunc: func(_ context.Context, name string, args ...string) probe.Outcome {
				if name == "df" {
					return df
				}
				return probe.Outcome{}
			},
		},
		Info: &mockHost{version: "go1.25.0", platform: "Linux 6.8.0-49-generic", os: "linux", arch: "amd64", bits: 64},
	}
}

func TestRun_RecordsInOrder(t *testing.T) {
	rec := &recorder{}
	checks := testChecks(map[string]string{"COLAB_GPU": "1"}, probe.Outcome{Succeeded: true, Output: dfOutput})

	checks.Run(context.Background(), rec)

	wantIDs := []check.ID{check.RuntimeVersion, check.Platform, check.Architecture, check.GPU, check.DiskSpace}
	assert.Len(t, rec.results, len(wantIDs))
	for i, id := range wantIDs {
		assert.Equal(t, id, rec.results[i].ID)
	}

	runtime, _ := rec.byID(check.RuntimeVersion)
	assert.Equal(t, check.StatusOK, runtime.Status)
	assert.Equal(t, "go1.25.0", runtime.Message)

	platform, _ := rec.byID(check.Platform)
	assert.Equal(t, "Linux 6.8.0-49-generic", platform.Message)
	assert.Equal(t, []string{"os: linux", "arch: amd64"}, platform.Details)

	arch, _ := rec.byID(check.Architecture)
	assert.Equal(t, "64bit", arch.Message)
}

func TestRun_GPU(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantStatus  check.Status
		wantMessage string
	}{
		{"accelerator attached", map[string]string{"COLAB_GPU": "1"}, check.StatusOK, "可用"},
		{"variable present but empty", map[string]string{"COLAB_GPU": ""}, check.StatusOK, "可用"},
		{"no accelerator", map[string]string{}, check.StatusFail, "不可用"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			checks := testChecks(tt.env, probe.Outcome{Succeeded: true, Output: dfOutput})

			checks.Run(context.Background(), rec)

			gpu, ok := rec.byID(check.GPU)
			assert.True(t, ok)
			assert.Equal(t, tt.wantStatus, gpu.Status)
			assert.Equal(t, tt.wantMessage, gpu.Message)
		})
	}
}

func TestRun_DiskSpace(t *testing.T) {
	tests := []struct {
		name        string
		df          probe.Outcome
		wantStatus  check.Status
		wantMessage string
	}{
		{"healthy output", probe.Outcome{Succeeded: true, Output: dfOutput}, check.StatusOK, "已用: 20G, 可用: 28G"},
		{"df fails", probe.Outcome{Succeeded: false, Output: "执行错误: exec: \"df\": executable file not found"}, check.StatusFail, "无法获取磁盘信息"},
		{"header only", probe.Outcome{Succeeded: true, Output: "Filesystem Size Used Avail Use% Mounted on"}, check.StatusFail, "无法获取磁盘信息"},
		{"truncated fields", probe.Outcome{Succeeded: true, Output: "Filesystem Size\n/dev/root 50G"}, check.StatusFail, "无法获取磁盘信息"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			checks := testChecks(nil, tt.df)

			checks.Run(context.Background(), rec)

			disk, ok := rec.byID(check.DiskSpace)
			assert.True(t, ok)
			assert.Equal(t, tt.wantStatus, disk.Status, "message: %s", disk.Message)
			assert.Equal(t, tt.wantMessage, disk.Message)
		})
	}
}

func TestRealHostInfo(t *testing.T) {
	info := &RealHostInfo{}
	assert.NotEmpty(t, info.RuntimeVersion())
	assert.NotEmpty(t, info.Platform())
	assert.NotEmpty(t, info.OS())
	assert.NotEmpty(t, info.Arch())
	assert.Contains(t, []int{32, 64}, info.BitWidth())
}
