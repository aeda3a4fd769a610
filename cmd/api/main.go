// @title           Library Catalog API
// @version         1.0
// @description     图书目录管理：图书、作者、出版社、类型的增删改查，条件搜索和CSV导出
// @host            localhost:3000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Bearer {token}
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/xiebiao/catalog/docs"
	"github.com/xiebiao/catalog/internal/infrastructure/config"
	"github.com/xiebiao/catalog/pkg/logger"
)

// cli 命令共享的配置和日志
type cli struct {
	configPath string
	cfg        *config.Config
	log        *zap.Logger
	restore    func()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Library catalog API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.close()
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "配置文件路径（默认 ./config/config.yaml）")

	root.AddCommand(
		newServeCmd(c),
		newMigrateCmd(c),
		newSeedCmd(c),
		newUserCmd(c),
		newAuditCmd(c),
	)

	return root
}

// init 加载配置并安装全局logger
func (c *cli) init() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.log = log.With(zap.String("version", version))
	c.restore = logger.ReplaceGlobal(c.log)
	return nil
}

func (c *cli) close() {
	if c.log != nil {
		_ = c.log.Sync()
	}
	if c.restore != nil {
		c.restore()
	}
}
