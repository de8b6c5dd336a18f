// -- cmd/run.go --
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wrenhollow/bluebot/internal/battle"
	"github.com/wrenhollow/bluebot/internal/bot"
	"github.com/wrenhollow/bluebot/internal/config"
	"github.com/wrenhollow/bluebot/internal/emulator"
	"github.com/wrenhollow/bluebot/internal/gamepad"
	"github.com/wrenhollow/bluebot/internal/memmap"
	"github.com/wrenhollow/bluebot/internal/navigation"
	"github.com/wrenhollow/bluebot/internal/observability"
	"github.com/wrenhollow/bluebot/internal/persistence"
	"github.com/wrenhollow/bluebot/internal/progression"
)

// newRunCmd creates the `run` command, which plays the game.
func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Connects to the emulator bridge and plays the campaign",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag("bot.max_iterations", cmd.Flags().Lookup("max-iterations")); err != nil {
				return err
			}
			if err := viper.BindPFlag("emulator.address", cmd.Flags().Lookup("address")); err != nil {
				return err
			}
			if err := viper.BindPFlag("progression.record_path", cmd.Flags().Lookup("record")); err != nil {
				return err
			}
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg, err := config.NewConfigFromViper(viper.GetViper())
			if err != nil {
				return err
			}
			stepFilter := viper.GetString("step")

			client, err := emulator.Dial(emulator.Config{
				Address:        cfg.Emulator.Address,
				DialTimeout:    cfg.Emulator.DialTimeout,
				RequestTimeout: cfg.Emulator.RequestTimeout,
			}, logger)
			if err != nil {
				return err
			}
			defer client.Close()

			reader := memmap.New(client, logger)
			input := gamepad.New(gamepad.Config{
				PressesPerSecond: cfg.Emulator.PressesPerSecond,
				MinHoldFrames:    cfg.Emulator.MinHoldFrames,
			}, client, logger)

			engineCfg := battle.DefaultConfig()
			engineCfg.LowHPThreshold = cfg.Battle.LowHPThreshold
			engineCfg.MidHPThreshold = cfg.Battle.MidHPThreshold
			engineCfg.FleeAfterIneffectiveTurns = cfg.Battle.FleeAfterIneffectiveTurns
			engineCfg.MenuFrames = cfg.Battle.MenuFrames
			engineCfg.ConfirmFrames = cfg.Battle.ConfirmFrames
			engineCfg.AnimationFrames = cfg.Battle.AnimationFrames
			engine := battle.New(engineCfg, input, logger)

			navCfg := navigation.DefaultConfig()
			navCfg.FramesPerStep = cfg.Navigation.FramesPerStep
			navCfg.StuckThreshold = cfg.Navigation.StuckThreshold
			navCfg.EscapeSteps = cfg.Navigation.EscapeSteps
			navCfg.MaxEscapeAttempts = cfg.Navigation.MaxEscapeAttempts
			navCfg.MaxSteps = cfg.Navigation.MaxSteps
			navigator := navigation.New(navCfg, reader, input, logger)

			store := persistence.NewFileStore(cfg.Progression.RecordPath)
			machineCfg := progression.DefaultConfig()
			machineCfg.MaxSubGoalFailures = cfg.Progression.MaxSubGoalFailures
			machine, err := progression.New(machineCfg, navigator, store, logger)
			if err != nil {
				return err
			}
			if stepFilter != "" {
				if err := machine.SetStep(stepFilter); err != nil {
					return err
				}
			}

			botCfg := bot.DefaultConfig()
			botCfg.MaxIterations = cfg.Bot.MaxIterations
			botCfg.StatusEvery = 1.0 / maxFloat(cfg.Bot.StatusInterval, 1)
			botCfg.StopAfter = stepFilter
			runner := bot.New(botCfg, reader, input, engine, machine, logger)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return runner.Run(gctx)
			})
			g.Go(func() error {
				<-gctx.Done()
				// Unstick any in-flight bridge round trip on shutdown.
				client.Close()
				return nil
			})

			if err := g.Wait(); err != nil && gctx.Err() == nil {
				return fmt.Errorf("run failed: %w", err)
			}
			if ctx.Err() != nil {
				logger.Info("run aborted by user signal")
			}
			record := machine.Record()
			logger.Info("run finished",
				zap.String("step", record.CurrentStep),
				zap.Int("sub_goals_done", len(record.CompletedSubGoals)))
			return nil
		},
	}

	runCmd.Flags().Int("max-iterations", 0, "stop after this many loop iterations (0 = run to completion)")
	runCmd.Flags().String("address", "127.0.0.1:8712", "emulator bridge address (host:port)")
	runCmd.Flags().String("record", "progression_state.json", "progression record path")
	runCmd.Flags().String("step", "", "run exactly the named milestone, overriding saved progression")
	return runCmd
}

func maxFloat(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}
