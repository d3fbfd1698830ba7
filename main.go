package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"docker-run-task/internal/application/task"
	"docker-run-task/internal/config"
	"docker-run-task/internal/infra/docker/cli"
	"docker-run-task/internal/infra/taskinputs"
	"docker-run-task/pkg/execx"
	log "docker-run-task/pkg/log"
	"docker-run-task/pkg/pipeline"
	"docker-run-task/pkg/version"
)

func main() {
	// Parse command line flags
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")
	configPath := flag.String("config", "", "Path to task settings file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("docker-run-task version: %s\n", version.String())
		os.Exit(0)
	}

	if *showHelp {
		fmt.Println("docker-run-task")
		fmt.Println("Usage: docker-run-task [options]")
		fmt.Println("Inputs are read from INPUT_*, ENDPOINT_URL_* and ENDPOINT_AUTH_* variables.")
		fmt.Println("Options:")
		fmt.Println("  --version  Show version information")
		fmt.Println("  --help     Show help information")
		fmt.Println("  --config   Path to task settings file (YAML)")
		os.Exit(0)
	}

	agent := pipeline.NewWriter(os.Stdout)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fail(agent, err)
	}
	cfg.ApplyPipelineVariables(os.LookupEnv)

	log.InitLog(cfg.LogLevel, cfg.LogFormat)
	log.With("run_id", uuid.NewString())
	log.Debug("Starting docker run task", "version", version.GetVersion(), "docker", cfg.DockerPath)

	sources := []taskinputs.Source{taskinputs.NewEnvSource()}
	if cfg.InputsFile != "" {
		fileSource, err := taskinputs.LoadFileSource(cfg.InputsFile)
		if err != nil {
			fail(agent, err)
		}
		sources = append(sources, fileSource)
	}

	engine := cli.NewEngine(cli.Config{
		Binary:    cfg.DockerPath,
		ConfigDir: cfg.DockerConfigDir,
	}, execx.NewStreamRunner())

	t, err := task.NewDockerRunTask(taskinputs.NewProvider(sources...), engine, agent)
	if err != nil {
		fail(agent, err)
	}

	// A cancelled run kills the docker process in flight.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := t.Run(ctx); err != nil {
		stop()
		fail(agent, err)
	}

	log.Info("Docker run task completed")
	agent.Complete(pipeline.Succeeded, "")
}

// fail reports err to the pipeline agent and exits non-zero.
func fail(agent *pipeline.Writer, err error) {
	log.Error("Docker run task failed", "error", err)
	agent.LogIssue(pipeline.IssueError, err.Error())
	agent.Complete(pipeline.Failed, err.Error())
	os.Exit(1)
}
