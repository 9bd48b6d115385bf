// jamf/commands.go
// Device-action commands. Each call issues a single command-queue POST and
// returns the identifier of the queued command; the adapter never polls for
// completion or confirms device receipt. Repeating a call re-issues the
// action.
package jamf

import (
	"context"
	"encoding/xml"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/httpclient"
)

// passcodePattern is the required shape of lock/erase passcodes.
var passcodePattern = regexp.MustCompile(`^[0-9]{6}$`)

func validatePasscode(passcode string) error {
	if !passcodePattern.MatchString(passcode) {
		return invalidArgf("passcode must be exactly 6 digits")
	}
	return nil
}

func validateDeviceID(id int) error {
	if id <= 0 {
		return invalidArgf("device id must be a positive integer, got %d", id)
	}
	return nil
}

// ComputerCommandResult identifies one queued computer command.
type ComputerCommandResult struct {
	Name        string `json:"name"`
	CommandUUID string `json:"command_uuid"`
	ComputerID  int    `json:"computer_id"`
}

type computerCommandEnvelope struct {
	ComputerCommand struct {
		Command ComputerCommandResult `json:"command"`
	} `json:"computer_command"`
}

// LockComputer queues a DeviceLock command. The passcode must be exactly 6
// digits; an optional message is displayed on the lock screen.
func (s *Service) LockComputer(ctx context.Context, id int, passcode, message string) (*ComputerCommandResult, error) {
	if err := validateDeviceID(id); err != nil {
		return nil, err
	}
	if err := validatePasscode(passcode); err != nil {
		return nil, err
	}

	query := url.Values{}
	if message != "" {
		query.Set("lock_message", message)
	}

	endpoint := "/computercommands/command/DeviceLock/passcode/" + passcode + "/id/" + strconv.Itoa(id)
	var envelope computerCommandEnvelope
	err := s.client.Do(ctx, httpclient.Request{
		Method:   http.MethodPost,
		Endpoint: endpoint,
		Query:    query,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	result := envelope.ComputerCommand.Command
	s.log.Info("Queued computer lock command",
		zap.Int("computer_id", id), zap.String("command_uuid", result.CommandUUID))
	return &result, nil
}

// EraseComputer queues an EraseDevice command wiping the computer. The
// passcode must be exactly 6 digits.
func (s *Service) EraseComputer(ctx context.Context, id int, passcode string) (*ComputerCommandResult, error) {
	if err := validateDeviceID(id); err != nil {
		return nil, err
	}
	if err := validatePasscode(passcode); err != nil {
		return nil, err
	}

	endpoint := "/computercommands/command/EraseDevice/passcode/" + passcode + "/id/" + strconv.Itoa(id)
	var envelope computerCommandEnvelope
	err := s.client.Do(ctx, httpclient.Request{
		Method:   http.MethodPost,
		Endpoint: endpoint,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	result := envelope.ComputerCommand.Command
	s.log.Info("Queued computer erase command",
		zap.Int("computer_id", id), zap.String("command_uuid", result.CommandUUID))
	return &result, nil
}

// MobileDeviceCommandResult identifies one queued mobile device command.
type MobileDeviceCommandResult struct {
	Name    string            `json:"name"`
	Status  string            `json:"status"`
	Devices []MobileDeviceRef `json:"mobile_devices"`
}

// MobileDeviceRef ties a queued command to a device and its management id.
type MobileDeviceRef struct {
	ID           int    `json:"id"`
	ManagementID string `json:"management_id"`
}

type mobileDeviceCommandEnvelope struct {
	MobileDeviceCommand MobileDeviceCommandResult `json:"mobile_device_command"`
}

// EraseMobileDeviceOptions carries the optional EraseDevice flags.
type EraseMobileDeviceOptions struct {
	PreserveDataPlan    bool
	ClearActivationCode bool
}

// EraseMobileDevice queues an EraseDevice command wiping the mobile device.
func (s *Service) EraseMobileDevice(ctx context.Context, id int, opts EraseMobileDeviceOptions) (*MobileDeviceCommandResult, error) {
	if err := validateDeviceID(id); err != nil {
		return nil, err
	}

	query := url.Values{}
	if opts.PreserveDataPlan {
		query.Set("preserve_data_plan", "true")
	}
	if opts.ClearActivationCode {
		query.Set("clear_activation_code", "true")
	}

	endpoint := "/mobiledevicecommands/command/EraseDevice/id/" + strconv.Itoa(id)
	var envelope mobileDeviceCommandEnvelope
	err := s.client.Do(ctx, httpclient.Request{
		Method:   http.MethodPost,
		Endpoint: endpoint,
		Query:    query,
	}, &envelope)
	if err != nil {
		return nil, err
	}

	result := envelope.MobileDeviceCommand
	s.log.Info("Queued mobile device erase command",
		zap.Int("device_id", id), zap.String("status", result.Status))
	return &result, nil
}

// lostModeCommand is the XML body of an EnableLostMode command.
type lostModeCommand struct {
	XMLName  xml.Name `xml:"mobile_device_command"`
	Command  string   `xml:"command"`
	Message  string   `xml:"lost_mode_message,omitempty"`
	Phone    string   `xml:"lost_mode_phone,omitempty"`
	Footnote string   `xml:"lost_mode_footnote,omitempty"`
	Devices  struct {
		IDs []int `xml:"mobile_device>id"`
	} `xml:"mobile_devices"`
}

// EnableLostMode queues an EnableLostMode command. The lost-mode message is
// required; phone and footnote are optional. The command body travels as XML,
// which is the format the command queue accepts for lost mode.
func (s *Service) EnableLostMode(ctx context.Context, id int, message, phone, footnote string) (*MobileDeviceCommandResult, error) {
	if err := validateDeviceID(id); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, invalidArgf("lost mode message must not be empty")
	}

	body := lostModeCommand{
		Command:  "EnableLostMode",
		Message:  message,
		Phone:    phone,
		Footnote: footnote,
	}
	body.Devices.IDs = []int{id}

	endpoint := "/mobiledevicecommands/command/EnableLostMode/id/" + strconv.Itoa(id)
	var envelope mobileDeviceCommandEnvelope
	err := s.client.Do(ctx, httpclient.Request{
		Method:      http.MethodPost,
		Endpoint:    endpoint,
		Body:        body,
		ContentType: "application/xml",
	}, &envelope)
	if err != nil {
		return nil, err
	}

	result := envelope.MobileDeviceCommand
	s.log.Info("Queued lost mode command",
		zap.Int("device_id", id), zap.String("status", result.Status))
	return &result, nil
}
