// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mqx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 处理一条反序列化好的事件
type Handler[T any] func(ctx context.Context, evt T) error

// GeneralConsumer 循环拉取消息并交给 Handler，处理失败只记录日志
type GeneralConsumer[T any] struct {
	name     string
	consumer mq.Consumer
	handler  Handler[T]
	logger   *elog.Component
}

func NewGeneralConsumer[T any](q mq.MQ, topic, groupID string, handler Handler[T]) (*GeneralConsumer[T], error) {
	c, err := q.Consumer(topic, groupID)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的消费者失败: %w", topic, err)
	}
	return &GeneralConsumer[T]{
		name:     topic + ":" + groupID,
		consumer: c,
		handler:  handler,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *GeneralConsumer[T]) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费事件失败",
					elog.String("consumer", c.name),
					elog.FieldErr(err))
			}
		}
	}()
}

func (c *GeneralConsumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.handler(ctx, evt)
	if errors.Is(err, ErrSkip) {
		return nil
	}
	return err
}

// ErrSkip Handler 返回这个错误表示消息可以直接丢弃
var ErrSkip = errors.New("跳过该消息")
