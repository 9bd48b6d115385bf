// integration/actions.go
// Device-action commands. Each invocation queues exactly one command on the
// server; repeating an invocation queues it again.
package integration

import (
	"context"

	"github.com/harborsec/go-jamf-classic-adapter/jamf"
)

func (a *Adapter) computerLockCommand() Command {
	return Command{
		Name:        "jamf-computer-lock",
		Description: "Queue a DeviceLock command locking a computer behind a passcode.",
		Args: []ArgSpec{
			{Name: "id", Description: "Computer id in the inventory.", Required: true},
			{Name: "passcode", Description: "6-digit passcode required to unlock the computer.", Required: true},
			{Name: "lock_message", Description: "Message displayed on the lock screen."},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			id, err := requiredPositiveID(args, "id")
			if err != nil {
				return nil, err
			}

			result, err := a.service.LockComputer(ctx, id, args.String("passcode"), args.String("lock_message"))
			if err != nil {
				return nil, err
			}

			return &Result{
				Outputs:  map[string]any{"JAMF.LockComputer": result},
				Readable: computerCommandTable("Computer Lock Queued", result),
			}, nil
		},
	}
}

func (a *Adapter) computerEraseCommand() Command {
	return Command{
		Name:        "jamf-computer-erase",
		Description: "Queue an EraseDevice command wiping a computer.",
		Args: []ArgSpec{
			{Name: "id", Description: "Computer id in the inventory.", Required: true},
			{Name: "passcode", Description: "6-digit passcode required after the wipe.", Required: true},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			id, err := requiredPositiveID(args, "id")
			if err != nil {
				return nil, err
			}

			result, err := a.service.EraseComputer(ctx, id, args.String("passcode"))
			if err != nil {
				return nil, err
			}

			return &Result{
				Outputs:  map[string]any{"JAMF.EraseComputer": result},
				Readable: computerCommandTable("Computer Erase Queued", result),
			}, nil
		},
	}
}

func (a *Adapter) mobileDeviceEraseCommand() Command {
	return Command{
		Name:        "jamf-mobile-device-erase",
		Description: "Queue an EraseDevice command wiping a mobile device.",
		Args: []ArgSpec{
			{Name: "id", Description: "Mobile device id in the inventory.", Required: true},
			{Name: "preserve_data_plan", Description: "Keep the cellular data plan active after the wipe.", Default: "false"},
			{Name: "clear_activation_code", Description: "Clear the activation lock as part of the wipe.", Default: "false"},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			id, err := requiredPositiveID(args, "id")
			if err != nil {
				return nil, err
			}
			preserve, err := args.Bool("preserve_data_plan")
			if err != nil {
				return nil, err
			}
			clear, err := args.Bool("clear_activation_code")
			if err != nil {
				return nil, err
			}

			result, err := a.service.EraseMobileDevice(ctx, id, jamf.EraseMobileDeviceOptions{
				PreserveDataPlan:    preserve,
				ClearActivationCode: clear,
			})
			if err != nil {
				return nil, err
			}

			return &Result{
				Outputs:  map[string]any{"JAMF.EraseMobileDevice": result},
				Readable: mobileDeviceCommandTable("Mobile Device Erase Queued", result),
			}, nil
		},
	}
}

func (a *Adapter) mobileDeviceLostModeCommand() Command {
	return Command{
		Name:        "jamf-mobile-device-lost-mode",
		Description: "Queue an EnableLostMode command placing a mobile device in lost mode.",
		Args: []ArgSpec{
			{Name: "id", Description: "Mobile device id in the inventory.", Required: true},
			{Name: "lost_mode_message", Description: "Message displayed on the lost device.", Required: true},
			{Name: "phone", Description: "Contact phone number displayed on the lost device."},
			{Name: "footnote", Description: "Footnote displayed on the lost device."},
		},
		Run: func(ctx context.Context, args Args) (*Result, error) {
			id, err := requiredPositiveID(args, "id")
			if err != nil {
				return nil, err
			}

			result, err := a.service.EnableLostMode(ctx, id,
				args.String("lost_mode_message"), args.String("phone"), args.String("footnote"))
			if err != nil {
				return nil, err
			}

			return &Result{
				Outputs:  map[string]any{"JAMF.LostMode": result},
				Readable: mobileDeviceCommandTable("Lost Mode Queued", result),
			}, nil
		},
	}
}

func requiredPositiveID(args Args, name string) (int, error) {
	id, err := args.Int(name)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, invalidArgf("argument %q must be a positive integer", name)
	}
	return id, nil
}

func computerCommandTable(title string, r *jamf.ComputerCommandResult) string {
	return keyValueTable(title, [][2]string{
		{"Command", r.Name},
		{"Command UUID", r.CommandUUID},
		{"Computer ID", formatInt(r.ComputerID)},
	})
}

func mobileDeviceCommandTable(title string, r *jamf.MobileDeviceCommandResult) string {
	pairs := [][2]string{
		{"Command", r.Name},
		{"Status", r.Status},
	}
	for _, d := range r.Devices {
		pairs = append(pairs, [2]string{"Device ID", formatInt(d.ID)})
	}
	return keyValueTable(title, pairs)
}
