package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/xiebiao/catalog/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/catalog/internal/interface/http/middleware"
	"github.com/xiebiao/catalog/pkg/mq"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "迁移数据库表结构",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *c.cfg
			cfg.Database.AutoMigrate = false

			db, cleanup, err := provideDB(&cfg, c.log)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := gormdb.Migrate(db); err != nil {
				return err
			}
			c.log.Info("database migrated", zap.String("driver", cfg.Database.Driver))
			return nil
		},
	}
}

func newSeedCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "为空表写入示例数据和管理员账号",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := initializeApp(c.cfg, c.log)
			if err != nil {
				return err
			}
			defer cleanup()
			return app.Seeder.Run(cmd.Context())
		},
	}
}

func newUserCmd(c *cli) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "用户管理",
	}

	var name, email string
	create := &cobra.Command{
		Use:   "create",
		Short: "创建用户（交互式输入密码）",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			app, cleanup, err := initializeApp(c.cfg, c.log)
			if err != nil {
				return err
			}
			defer cleanup()

			u, err := app.Users.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user #%d created: %s <%s>\n", u.ID, u.Name, u.Email)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "用户名")
	create.Flags().StringVar(&email, "email", "", "邮箱")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("email")

	userCmd.AddCommand(create)
	return userCmd
}

// readPassword 终端下不回显读取密码，否则从输入读取一行（便于脚本管道输入）
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("读取密码失败: %w", err)
		}
		return checkPassword(string(b))
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("读取密码失败: %w", err)
	}
	return checkPassword(strings.TrimRight(line, "\r\n"))
}

func checkPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("密码不能为空")
	}
	return password, nil
}

func newAuditCmd(c *cli) *cobra.Command {
	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "审计事件",
	}

	consume := &cobra.Command{
		Use:   "consume",
		Short: "消费审计队列并输出到日志",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.cfg.MQ.Enabled {
				return errors.New("mq未启用（mq.enabled=false）")
			}

			consumer, err := mq.NewConsumer(
				mqOptions(c.cfg),
				c.cfg.MQ.AuditQueue,
				[]string{middleware.AuditRoutingKeyPrefix + "#"},
				c.log,
			)
			if err != nil {
				return err
			}
			defer consumer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return consumer.Consume(ctx, auditHandler(c.log))
		},
	}

	auditCmd.AddCommand(consume)
	return auditCmd
}

// auditHandler 记录审计事件；无法解析的消息丢弃，避免反复重新入队
func auditHandler(log *zap.Logger) mq.Handler {
	return func(ctx context.Context, routingKey string, body []byte) error {
		var event middleware.AuditEvent
		if err := json.Unmarshal(body, &event); err != nil {
			log.Warn("drop malformed audit event", zap.String("routing_key", routingKey), zap.Error(err))
			return nil
		}

		log.Info(event.String(),
			zap.String("routing_key", routingKey),
			zap.Int("status", event.Status),
			zap.String("request_id", event.RequestID),
			zap.Time("at", event.At),
		)
		return nil
	}
}
