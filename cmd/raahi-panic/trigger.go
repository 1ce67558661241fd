package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"raahi/internal/client/countdown"
	"raahi/internal/domain/entity"
	"raahi/internal/util"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var triggerFlags struct {
	lat             float64
	lng             float64
	noLocation      bool
	now             bool
	countdown       time.Duration
	locationTimeout time.Duration
	number          string
	dialCmd         string
}

var triggerCmd = &cobra.Command{
	Use:     "trigger",
	Aliases: []string{"panic"},
	Short:   "Start the panic countdown and dispatch the alert",
	Long: `Start the panic countdown. Press Ctrl+C before it reaches zero to cancel.
Once the countdown ends the alert is sent and the emergency number is dialled,
even if the API is unreachable.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !triggerFlags.noLocation {
			if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lng") {
				return errors.New("--lat and --lng are required unless --no-location is set")
			}
			if _, err := entity.NewCoordinate(triggerFlags.lat, triggerFlags.lng); err != nil {
				return errors.Wrap(err, "invalid location")
			}
		}

		listener := newTerminalListener(cmd.OutOrStdout())
		ctrl, err := countdown.NewController(countdown.Options{
			Countdown:       triggerFlags.countdown,
			LocationTimeout: triggerFlags.locationTimeout,
			EmergencyNumber: triggerFlags.number,
		}, countdown.Dependencies{
			Location: &fixedLocation{
				coord:       entity.Coordinate{Latitude: triggerFlags.lat, Longitude: triggerFlags.lng},
				unavailable: triggerFlags.noLocation,
			},
			Sender: countdown.NewHTTPSender(globalFlags.apiURL, countdown.Identity{
				Token:       globalFlags.token,
				UserID:      globalFlags.userID,
				Email:       globalFlags.email,
				DisplayName: globalFlags.displayName,
				UserAgent:   "raahi-panic",
			}, nil),
			Dialer:   &commandDialer{command: triggerFlags.dialCmd, out: cmd.OutOrStdout()},
			Listener: listener,
		})
		if err != nil {
			return err
		}

		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(interrupts)

		ctrl.Trigger()
		if triggerFlags.now {
			ctrl.ConfirmNow()
		}

		for {
			select {
			case <-interrupts:
				if ctrl.Cancel() {
					color.Yellow("Countdown cancelled, no alert was sent")

					return nil
				}
				color.Yellow("Alert is already being dispatched and cannot be cancelled")
			case result := <-listener.results:
				ctrl.Wait()

				return reportResult(result)
			}
		}
	},
}

func init() {
	flags := triggerCmd.Flags()
	flags.Float64Var(&triggerFlags.lat, "lat", 0, "latitude of the device")
	flags.Float64Var(&triggerFlags.lng, "lng", 0, "longitude of the device")
	flags.BoolVar(&triggerFlags.noLocation, "no-location", false, "simulate a device without a location fix")
	flags.BoolVar(&triggerFlags.now, "now", false, "skip the countdown and dispatch immediately")
	flags.DurationVar(&triggerFlags.countdown, "countdown", 30*time.Second, "countdown before the alert fires")
	flags.DurationVar(&triggerFlags.locationTimeout, "location-timeout", 10*time.Second, "bound on location acquisition")
	flags.StringVar(&triggerFlags.number, "number", "112", "emergency number to dial")
	flags.StringVar(&triggerFlags.dialCmd, "dial-cmd", "", "command run with the number as its last argument to place the call")
}

func reportResult(result countdown.DispatchResult) error {
	if result.Stored() {
		color.Green("✓ Alert %s stored", result.AlertID)
		fmt.Printf("  path: %s\n", result.Path)
	} else {
		color.Red("✗ Alert was not stored: %v", result.StoreErr)
	}

	if result.Degraded {
		color.Yellow("  location unavailable, alert flagged as degraded")
	} else {
		fmt.Printf("  location: %s\n", util.FormatCoordinate(result.Location.Latitude, result.Location.Longitude))
	}

	if result.CallErr != nil {
		color.Red("✗ Emergency call failed: %v", result.CallErr)
	}

	if !result.Stored() {
		return errors.New("alert dispatch incomplete")
	}

	return nil
}

// fixedLocation reports a position given on the command line.
type fixedLocation struct {
	coord       entity.Coordinate
	unavailable bool
}

func (f *fixedLocation) CurrentLocation(_ context.Context) (entity.Coordinate, error) {
	if f.unavailable {
		return entity.Coordinate{}, countdown.ErrLocationUnavailable
	}

	return f.coord, nil
}

// commandDialer places the call by running an external command.
type commandDialer struct {
	command string
	out     io.Writer
}

func (d *commandDialer) Dial(ctx context.Context, number string) error {
	color.New(color.FgRed, color.Bold).Fprintf(d.out, "☎ Calling %s\n", number)
	if strings.TrimSpace(d.command) == "" {
		return nil
	}

	fields := strings.Fields(d.command)
	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], number)...)
	cmd.Stdout = d.out
	cmd.Stderr = d.out

	return errors.Wrapf(cmd.Run(), "dial command %q", fields[0])
}

// terminalListener prints controller progress.
type terminalListener struct {
	out     io.Writer
	results chan countdown.DispatchResult
}

func newTerminalListener(out io.Writer) *terminalListener {
	return &terminalListener{out: out, results: make(chan countdown.DispatchResult, 1)}
}

func (l *terminalListener) OnStateChange(_, to countdown.State) {
	if to == countdown.StateDispatching {
		color.New(color.FgRed, color.Bold).Fprintln(l.out, "Dispatching panic alert")
	}
}

func (l *terminalListener) OnTick(remaining int) {
	if remaining > 0 {
		fmt.Fprintf(l.out, "%s until alert (Ctrl+C to cancel)\n",
			color.YellowString(util.FormatDuration(time.Duration(remaining)*time.Second)))
	}
}

func (l *terminalListener) OnLocationProbe(available bool) {
	if available {
		color.New(color.Faint).Fprintln(l.out, "location fix available")
	} else {
		color.New(color.FgYellow).Fprintln(l.out, "location unavailable, alert will be degraded")
	}
}

func (l *terminalListener) OnDispatch(result countdown.DispatchResult) {
	select {
	case l.results <- result:
	default:
	}
}
