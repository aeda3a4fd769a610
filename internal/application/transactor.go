// Package application 应用层：编排领域服务、事务和横切关注点（指标、会话）
package application

import "context"

// Transactor 事务边界，fn中的仓储调用共享同一个事务
// 由gormdb.TxManager实现
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
