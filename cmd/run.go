package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/swaplayer"
	"github.com/0xPolygon/swaplayer/bridge"
	swaplayercommon "github.com/0xPolygon/swaplayer/common"
	"github.com/0xPolygon/swaplayer/config"
	"github.com/0xPolygon/swaplayer/custody"
	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/redemption"
	"github.com/0xPolygon/swaplayer/registry"
	"github.com/0xPolygon/swaplayer/relayer"
	"github.com/0xPolygon/swaplayer/rpc"
	"github.com/0xPolygon/swaplayer/staging"
	"github.com/0xPolygon/swaplayer/swap/remote"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const dataDirPermissions = 0o750

// settlement groups the engines sharing the settlement database
type settlement struct {
	registry   *registry.Registry
	ledger     *custody.Ledger
	staging    *staging.Engine
	redemption *redemption.Engine
}

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		swaplayer.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	ctx, cancel := context.WithCancel(cliCtx.Context)
	s, err := newSettlement(ctx, *c)
	if err != nil {
		cancel()
		return err
	}

	components := cliCtx.StringSlice(config.FlagComponents)
	g, gCtx := errgroup.WithContext(ctx)
	relay := runRelayerIfNeeded(gCtx, g, components, c.Relayer, s.redemption)
	if relay != nil {
		s.redemption.SetRelayQueue(relay)
	}
	g.Go(func() error {
		s.staging.Start(gCtx, c.Staging.ResendHandoffsPeriod.Duration)
		return nil
	})
	for _, component := range components {
		switch component {
		case swaplayercommon.RPC:
			server := createRPC(c.RPC, s, relay)
			g.Go(server.Start)
		case swaplayercommon.RELAYER:
		default:
			cancel()
			return fmt.Errorf("unknown component %s", component)
		}
	}
	go func() {
		if err := g.Wait(); err != nil {
			log.Fatal(err)
		}
	}()

	waitSignal([]context.CancelFunc{cancel})

	return nil
}

func newSettlement(ctx context.Context, c config.Config) (*settlement, error) {
	if err := os.MkdirAll(filepath.Dir(c.Storage.DBPath), dataDirPermissions); err != nil {
		return nil, fmt.Errorf("error creating the data dir: %w", err)
	}
	database, err := db.NewSQLiteDB(c.Storage.DBPath)
	if err != nil {
		return nil, err
	}

	reg, err := registry.New(log.WithFields("module", swaplayercommon.REGISTRY), database, c.Common.LocalChainID)
	if err != nil {
		return nil, err
	}
	err = reg.Initialize(ctx, c.Registry.Owner, c.Registry.OwnerAssistant, c.Registry.FeeRecipient, c.Registry.FeeUpdater)
	if err != nil && !errors.Is(err, registry.ErrAlreadyInitialized) {
		return nil, fmt.Errorf("error initializing the registry: %w", err)
	}
	ledger, err := custody.New(log.WithFields("module", swaplayercommon.CUSTODY), database)
	if err != nil {
		return nil, err
	}

	bridgeLogger := log.WithFields("module", swaplayercommon.BRIDGE)
	verifier, err := bridge.NewGuardianVerifier(bridgeLogger, c.Bridge.Guardians, c.Bridge.GuardianQuorum)
	if err != nil {
		return nil, fmt.Errorf("error creating the guardian verifier, check the [Bridge] config: %w", err)
	}
	attester := bridge.NewReceiptAttester(c.Bridge.Attesters)
	sender := bridge.NewLoopbackSender(bridgeLogger)
	executor := remote.New(log.WithFields("module", swaplayercommon.SWAP_EXECUTOR), c.SwapExecutor)

	stagingEngine, err := staging.New(
		log.WithFields("module", swaplayercommon.STAGING), database, c.Common, reg, ledger, sender, executor,
	)
	if err != nil {
		return nil, err
	}
	redemptionEngine, err := redemption.New(
		log.WithFields("module", swaplayercommon.REDEMPTION), database, c.Common, reg, ledger, verifier, attester, executor,
	)
	if err != nil {
		return nil, err
	}

	return &settlement{
		registry:   reg,
		ledger:     ledger,
		staging:    stagingEngine,
		redemption: redemptionEngine,
	}, nil
}

func runRelayerIfNeeded(
	ctx context.Context,
	g *errgroup.Group,
	components []string,
	cfg relayer.Config,
	redeemer relayer.Redeemer,
) *relayer.Relayer {
	if !isNeeded([]string{swaplayercommon.RELAYER}, components) || !cfg.Enabled {
		return nil
	}
	logger := log.WithFields("module", swaplayercommon.RELAYER)
	r, err := relayer.New(logger, cfg, redeemer)
	if err != nil {
		logger.Fatal(err)
	}
	g.Go(func() error {
		r.Start(ctx)
		return nil
	})

	return r
}

func createRPC(cfg jRPC.Config, s *settlement, relay *relayer.Relayer) *jRPC.Server {
	logger := log.WithFields("module", swaplayercommon.RPC)
	var queuer rpc.RelayQueuer
	if relay != nil {
		queuer = relay
	}
	services := []jRPC.Service{
		{
			Name: rpc.SWAPLAYER,
			Service: rpc.NewSwapLayerEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				s.registry,
				s.staging,
				s.redemption,
				s.ledger,
				queuer,
			),
		},
	}

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

func logVersion() {
	log.Infow("Starting application",
		// version is already logged by default
		"gitRevision", swaplayer.GitRev,
		"gitBranch", swaplayer.GitBranch,
		"goVersion", runtime.Version(),
		"built", swaplayer.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}

func waitSignal(cancelFuncs []context.CancelFunc) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	for sig := range signals {
		switch sig {
		case os.Interrupt, os.Kill:
			log.Info("terminating application gracefully...")

			exitStatus := 0
			for _, cancel := range cancelFuncs {
				cancel()
			}
			os.Exit(exitStatus)
		}
	}
}

func isNeeded(casesWhereNeeded, actualCases []string) bool {
	for _, actualCase := range actualCases {
		for _, caseWhereNeeded := range casesWhereNeeded {
			if actualCase == caseWhereNeeded {
				return true
			}
		}
	}

	return false
}
