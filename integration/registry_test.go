// integration/registry_test.go
package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborsec/go-jamf-classic-adapter/httpclient"
	"github.com/harborsec/go-jamf-classic-adapter/jamf"
	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

// newFixtureAdapter starts a mux-routed fixture server and returns an Adapter
// over it plus a counter of requests that reached the server.
func newFixtureAdapter(t *testing.T, configure func(*mux.Router)) (*Adapter, *int32) {
	t.Helper()

	var requests int32
	router := mux.NewRouter()
	configure(router)

	counting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		router.ServeHTTP(w, r)
	})

	server := httptest.NewServer(counting)
	t.Cleanup(server.Close)

	client, err := httpclient.BuildClientWithLogger(httpclient.Config{
		ServerURL:          server.URL,
		Username:           "api-reader",
		Password:           "hunter2",
		MaxRetryAttempts:   1,
		TotalRetryDuration: time.Second,
	}, logger.BuildNopLogger())
	require.NoError(t, err)

	return New(jamf.NewService(client), logger.BuildNopLogger()), &requests
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func TestCommandsSortedAndComplete(t *testing.T) {
	adapter, _ := newFixtureAdapter(t, func(r *mux.Router) {})

	commands := adapter.Commands()
	require.Len(t, commands, 14)

	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name)
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "jamf-get-computers")
	assert.Contains(t, names, "jamf-mobile-device-lost-mode")
}

func TestDispatchUnknownCommand(t *testing.T) {
	adapter, requests := newFixtureAdapter(t, func(r *mux.Router) {})

	_, err := adapter.Dispatch(context.Background(), "jamf-get-printers", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Zero(t, atomic.LoadInt32(requests))
}

func TestDispatchRejectsUnknownArgumentWithoutNetworkCall(t *testing.T) {
	adapter, requests := newFixtureAdapter(t, func(r *mux.Router) {})

	_, err := adapter.Dispatch(context.Background(), "jamf-get-computers",
		map[string]string{"serial": "C02ABC"})
	require.Error(t, err)
	assert.True(t, jamf.IsInvalidArgument(err))
	assert.Zero(t, atomic.LoadInt32(requests))
}

func TestDispatchRejectsMissingRequiredArgument(t *testing.T) {
	adapter, requests := newFixtureAdapter(t, func(r *mux.Router) {})

	_, err := adapter.Dispatch(context.Background(), "jamf-computer-lock",
		map[string]string{"id": "12"})
	require.Error(t, err)
	assert.True(t, jamf.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "passcode")
	assert.Zero(t, atomic.LoadInt32(requests))
}

func TestDispatchRejectsValueOutsideAllowedSet(t *testing.T) {
	adapter, requests := newFixtureAdapter(t, func(r *mux.Router) {})

	_, err := adapter.Dispatch(context.Background(), "jamf-get-computer-subset",
		map[string]string{
			"identifier":       "hostname",
			"identifier_value": "mac-001",
			"subset":           "Hardware",
		})
	require.Error(t, err)
	assert.True(t, jamf.IsInvalidArgument(err))
	assert.Zero(t, atomic.LoadInt32(requests))
}

func TestGetComputersAppliesDefaults(t *testing.T) {
	computers := make([]map[string]any, 80)
	for i := range computers {
		computers[i] = map[string]any{"id": i + 1, "name": "mac"}
	}

	adapter, _ := newFixtureAdapter(t, func(r *mux.Router) {
		r.HandleFunc("/JSSResource/computers/subset/basic", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"computers": computers})
		})
	})

	result, err := adapter.Dispatch(context.Background(), "jamf-get-computers", nil)
	require.NoError(t, err)

	got, ok := result.Outputs["JAMF.Computer"].([]jamf.ComputerBasic)
	require.True(t, ok)
	assert.Len(t, got, jamf.DefaultPageLimit)
	assert.Contains(t, result.Readable, "Jamf Computers")
}

func TestGetComputerByMatchNoEntries(t *testing.T) {
	adapter, _ := newFixtureAdapter(t, func(r *mux.Router) {
		r.HandleFunc("/JSSResource/computers/match/{term}", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"computers": []any{}})
		})
	})

	result, err := adapter.Dispatch(context.Background(), "jamf-get-computer-by-match",
		map[string]string{"match": "no-such-host*"})
	require.NoError(t, err)

	got, ok := result.Outputs["JAMF.Computer"].([]jamf.ComputerMatch)
	require.True(t, ok)
	assert.Empty(t, got)
	assert.Contains(t, result.Readable, NoEntriesMarker)
}

func TestGetComputerSubsetOutputsAndProjection(t *testing.T) {
	adapter, _ := newFixtureAdapter(t, func(r *mux.Router) {
		r.HandleFunc("/JSSResource/computers/id/42/subset/Hardware", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"computer": map[string]any{
				"hardware": map[string]any{
					"make":       "Apple",
					"model":      "MacBook Pro",
					"os_name":    "macOS",
					"os_version": "14.5",
				},
			}})
		})
	})

	result, err := adapter.Dispatch(context.Background(), "jamf-get-computer-subset",
		map[string]string{"identifier": "id", "identifier_value": "42", "subset": "hardware"})
	require.NoError(t, err)

	computer, ok := result.Outputs["JAMF.ComputerSubset"].(*jamf.Computer)
	require.True(t, ok)
	assert.Equal(t, "MacBook Pro", computer.Hardware.Model)
	assert.Contains(t, result.Readable, "Computer Hardware")
	assert.Contains(t, result.Readable, "14.5")
}

func TestGetUserReadableTable(t *testing.T) {
	adapter, _ := newFixtureAdapter(t, func(r *mux.Router) {
		r.HandleFunc("/JSSResource/users/email/amy@example.com", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{
				"id":        7,
				"name":      "amy",
				"full_name": "Amy Park",
				"email":     "amy@example.com",
				"links": map[string]any{
					"computers": []any{map[string]any{"id": 42, "name": "mac-042"}},
				},
			}})
		})
	})

	result, err := adapter.Dispatch(context.Background(), "jamf-get-user",
		map[string]string{"identifier": "email", "identifier_value": "amy@example.com"})
	require.NoError(t, err)

	user, ok := result.Outputs["JAMF.User"].(*jamf.User)
	require.True(t, ok)
	assert.Equal(t, 7, user.ID)
	assert.Contains(t, result.Readable, "Amy Park")
	assert.Contains(t, result.Readable, "mac-042")
}

func TestComputerLockCommand(t *testing.T) {
	adapter, requests := newFixtureAdapter(t, func(r *mux.Router) {
		r.HandleFunc("/JSSResource/computercommands/command/DeviceLock/passcode/123456/id/12",
			func(w http.ResponseWriter, req *http.Request) {
				assert.Equal(t, http.MethodPost, req.Method)
				assert.Equal(t, "Back to the office please", req.URL.Query().Get("lock_message"))
				writeJSON(w, http.StatusCreated, map[string]any{"computer_command": map[string]any{
					"command": map[string]any{
						"name":         "DeviceLock",
						"command_uuid": "1f2e3d4c",
						"computer_id":  12,
					},
				}})
			})
	})

	result, err := adapter.Dispatch(context.Background(), "jamf-computer-lock",
		map[string]string{"id": "12", "passcode": "123456", "lock_message": "Back to the office please"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))

	lock, ok := result.Outputs["JAMF.LockComputer"].(*jamf.ComputerCommandResult)
	require.True(t, ok)
	assert.Equal(t, "1f2e3d4c", lock.CommandUUID)
	assert.Contains(t, result.Readable, "Computer Lock Queued")
}

func TestComputerLockRejectsBadPasscodeWithoutNetworkCall(t *testing.T) {
	adapter, requests := newFixtureAdapter(t, func(r *mux.Router) {})

	_, err := adapter.Dispatch(context.Background(), "jamf-computer-lock",
		map[string]string{"id": "12", "passcode": "12345"})
	require.Error(t, err)
	assert.True(t, jamf.IsInvalidArgument(err))
	assert.Zero(t, atomic.LoadInt32(requests))
}

func TestMobileDeviceEraseFlags(t *testing.T) {
	adapter, _ := newFixtureAdapter(t, func(r *mux.Router) {
		r.HandleFunc("/JSSResource/mobiledevicecommands/command/EraseDevice/id/31",
			func(w http.ResponseWriter, req *http.Request) {
				assert.Equal(t, "true", req.URL.Query().Get("preserve_data_plan"))
				assert.Empty(t, req.URL.Query().Get("clear_activation_code"))
				writeJSON(w, http.StatusCreated, map[string]any{"mobile_device_command": map[string]any{
					"name":   "EraseDevice",
					"status": "Command sent",
					"mobile_devices": []any{
						map[string]any{"id": 31, "management_id": "9a8b"},
					},
				}})
			})
	})

	result, err := adapter.Dispatch(context.Background(), "jamf-mobile-device-erase",
		map[string]string{"id": "31", "preserve_data_plan": "true"})
	require.NoError(t, err)

	erase, ok := result.Outputs["JAMF.EraseMobileDevice"].(*jamf.MobileDeviceCommandResult)
	require.True(t, ok)
	assert.Equal(t, "Command sent", erase.Status)
}

func TestLostModeRequiresMessage(t *testing.T) {
	adapter, requests := newFixtureAdapter(t, func(r *mux.Router) {})

	_, err := adapter.Dispatch(context.Background(), "jamf-mobile-device-lost-mode",
		map[string]string{"id": "31"})
	require.Error(t, err)
	assert.True(t, jamf.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "lost_mode_message")
	assert.Zero(t, atomic.LoadInt32(requests))
}

func TestMarkdownTableShapes(t *testing.T) {
	got := markdownTable("Sample", []string{"ID", "Name"}, [][]string{
		{"1", "mac-001"},
		{"2", ""},
	})
	assert.True(t, strings.HasPrefix(got, "### Sample\n"))
	assert.Contains(t, got, "| ID | Name |")
	assert.Contains(t, got, "| 1 | mac-001 |")

	empty := markdownTable("Sample", []string{"ID", "Name"}, nil)
	assert.Equal(t, "### Sample\n**No entries.**", empty)
}
