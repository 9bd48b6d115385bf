// integration/registry.go
package integration

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/jamf"
	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

// Adapter holds the command registry over one jamf.Service.
type Adapter struct {
	service  *jamf.Service
	log      logger.Logger
	commands map[string]Command
}

// New builds an Adapter with every supported command registered.
func New(service *jamf.Service, log logger.Logger) *Adapter {
	a := &Adapter{
		service:  service,
		log:      log,
		commands: map[string]Command{},
	}

	a.register(a.getComputersCommand())
	a.register(a.getComputerByIDCommand())
	a.register(a.getComputerByMatchCommand())
	a.register(a.getComputerSubsetCommand())
	a.register(a.getMobileDevicesCommand())
	a.register(a.getMobileDeviceByIDCommand())
	a.register(a.getMobileDeviceByMatchCommand())
	a.register(a.getMobileDeviceSubsetCommand())
	a.register(a.getUsersCommand())
	a.register(a.getUserCommand())
	a.register(a.computerLockCommand())
	a.register(a.computerEraseCommand())
	a.register(a.mobileDeviceEraseCommand())
	a.register(a.mobileDeviceLostModeCommand())

	return a
}

func (a *Adapter) register(cmd Command) {
	a.commands[cmd.Name] = cmd
}

// Commands returns the registered commands sorted by name.
func (a *Adapter) Commands() []Command {
	out := make([]Command, 0, len(a.commands))
	for _, cmd := range a.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Dispatch validates the arguments against the command's schema and runs it.
// Schema violations fail before any network call.
func (a *Adapter) Dispatch(ctx context.Context, name string, supplied map[string]string) (*Result, error) {
	cmd, ok := a.commands[name]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}

	args, err := validateArgs(cmd.Args, supplied)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	a.log.Debug("Dispatching command", zap.String("command", name))

	result, err := cmd.Run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return result, nil
}
