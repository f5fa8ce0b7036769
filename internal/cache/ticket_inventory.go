package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"ticketee/internal/model"
	apperrors "ticketee/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// UnlimitedStock 不限量票種在 Redis 中的庫存值
const UnlimitedStock = -1

type TicketInventoryInfo struct {
	Stock int
	Price float64
	Limit int
}

type TicketInventoryManager interface {
	// 預熱：預先加載票種的庫存到 Redis
	WarmUpInventory(ctx context.Context, ticketType *model.TicketType, limit int) error
	// 獲取：獲取票種的庫存，不限量時為 UnlimitedStock
	GetStock(ctx context.Context, ticketTypeID uuid.UUID) (int, error)
	// 獲取：獲取票種的資訊
	GetInfo(ctx context.Context, ticketTypeID uuid.UUID) (TicketInventoryInfo, error)
	// 預留：扣減庫存並記錄使用者購買數量 (使用Lua腳本確保原子性)，回傳單價
	Reserve(ctx context.Context, ticketTypeID uuid.UUID, quantity int, userID uuid.UUID) (float64, error)
	// 釋放：回補庫存及使用者購買紀錄 (使用Lua腳本確保原子性)
	Release(ctx context.Context, ticketTypeID uuid.UUID, quantity int, userID uuid.UUID) error
}

type RedisTicketInventoryManager struct {
	client *redis.Client
}

func NewTicketInventoryManager(client *redis.Client) TicketInventoryManager {
	return &RedisTicketInventoryManager{
		client: client,
	}
}

func infoKey(ticketTypeID uuid.UUID) string {
	return fmt.Sprintf("ticket_type:%s:info", ticketTypeID)
}

func usersKey(ticketTypeID uuid.UUID) string {
	return fmt.Sprintf("ticket_type:%s:users", ticketTypeID)
}

// limit <= 0 代表不限制個人購買數量
func (m *RedisTicketInventoryManager) WarmUpInventory(ctx context.Context, ticketType *model.TicketType, limit int) error {
	stock := UnlimitedStock
	if ticketType.Remaining != nil {
		stock = *ticketType.Remaining
	} else if ticketType.Quantity != nil {
		stock = *ticketType.Quantity
	}
	return m.client.HSet(ctx, infoKey(ticketType.ID), map[string]interface{}{
		"stock": stock,
		"price": ticketType.Price,
		"limit": limit,
	}).Err()
}

func (m *RedisTicketInventoryManager) GetStock(ctx context.Context, ticketTypeID uuid.UUID) (int, error) {
	val, err := m.client.HGet(ctx, infoKey(ticketTypeID), "stock").Int()
	if errors.Is(err, redis.Nil) {
		return 0, apperrors.ErrTicketTypeNotFound
	}
	return val, err
}

func (m *RedisTicketInventoryManager) GetInfo(ctx context.Context, ticketTypeID uuid.UUID) (TicketInventoryInfo, error) {
	result, err := m.client.HGetAll(ctx, infoKey(ticketTypeID)).Result()
	if err != nil {
		return TicketInventoryInfo{}, err
	}

	if len(result) == 0 {
		return TicketInventoryInfo{}, apperrors.ErrTicketTypeNotFound
	}

	stock, err := strconv.Atoi(result["stock"])
	if err != nil {
		return TicketInventoryInfo{}, fmt.Errorf("invalid stock: %w", err)
	}

	price, err := strconv.ParseFloat(result["price"], 64)
	if err != nil {
		return TicketInventoryInfo{}, fmt.Errorf("invalid price: %w", err)
	}

	limit, err := strconv.Atoi(result["limit"])
	if err != nil {
		return TicketInventoryInfo{}, fmt.Errorf("invalid limit: %w", err)
	}

	return TicketInventoryInfo{
		Stock: stock,
		Price: price,
		Limit: limit,
	}, nil
}

var reserveScript = redis.NewScript(`
	local info_key = KEYS[1]
	local users_key = KEYS[2]
	local user_id = ARGV[1]
	local qty = tonumber(ARGV[2])

	local info = redis.call('HMGET', info_key, 'stock', 'price', 'limit')
	local stock = info[1]
	local price = info[2]
	local limit = info[3]

	-- 票種尚未預熱
	if not stock or not price or not limit then
		return {-3, '0'}
	end

	stock = tonumber(stock)
	limit = tonumber(limit)

	-- stock < 0 代表不限量
	if stock >= 0 and stock < qty then
		return {-1, '0'}
	end

	local bought = tonumber(redis.call('HGET', users_key, user_id) or '0')
	if limit > 0 and bought + qty > limit then
		return {-2, '0'}
	end

	if stock >= 0 then
		redis.call('HINCRBY', info_key, 'stock', -qty)
	end
	redis.call('HINCRBY', users_key, user_id, qty)

	return {1, price}
`)

var releaseScript = redis.NewScript(`
	local info_key = KEYS[1]
	local users_key = KEYS[2]
	local user_id = ARGV[1]
	local qty = tonumber(ARGV[2])

	local stock = redis.call('HGET', info_key, 'stock')
	if stock and tonumber(stock) >= 0 then
		redis.call('HINCRBY', info_key, 'stock', qty)
	end

	local bought = tonumber(redis.call('HGET', users_key, user_id) or '0')
	if bought - qty <= 0 then
		redis.call('HDEL', users_key, user_id)
	else
		redis.call('HINCRBY', users_key, user_id, -qty)
	end

	return 'OK'
`)

func (m *RedisTicketInventoryManager) Reserve(ctx context.Context, ticketTypeID uuid.UUID, quantity int, userID uuid.UUID) (float64, error) {
	keys := []string{infoKey(ticketTypeID), usersKey(ticketTypeID)}

	result, err := reserveScript.Run(ctx, m.client, keys, userID.String(), quantity).Slice()
	if err != nil {
		return 0, err
	}
	if len(result) != 2 {
		return 0, fmt.Errorf("unexpected reserve result: %v", result)
	}

	code, ok := result[0].(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected reserve code: %v", result[0])
	}

	switch code {
	case 1:
		priceStr, _ := result[1].(string)
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price: %w", err)
		}
		return price, nil
	case -1:
		return 0, apperrors.ErrInsufficientStock
	case -2:
		return 0, apperrors.ErrExceedsMaxPerUser
	case -3:
		return 0, apperrors.ErrTicketTypeNotFound
	}
	return 0, fmt.Errorf("unexpected reserve code: %d", code)
}

func (m *RedisTicketInventoryManager) Release(ctx context.Context, ticketTypeID uuid.UUID, quantity int, userID uuid.UUID) error {
	keys := []string{infoKey(ticketTypeID), usersKey(ticketTypeID)}
	return releaseScript.Run(ctx, m.client, keys, userID.String(), quantity).Err()
}
