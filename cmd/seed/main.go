package main

import (
	"log"
	"os"
	"time"

	"ichibetsu-be/internal/model"
	"ichibetsu-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func strPtr(s string) *string {
	return &s
}

var sampleRestaurants = []model.Restaurant{
	{
		Name:         "和食処 さくら",
		Address:      "東京都渋谷区神南1-1-1",
		Hours:        strPtr("11:30-14:00, 17:30-22:00"),
		Phone:        strPtr("03-1234-5678"),
		MainImageUrl: "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=800",
		OwnerMessage: "四季の味を大切に、心を込めてお作りしています",
		Story:        "創業50年の老舗和食店です。祖父から受け継いだ伝統の味を守りながら、現代の感性も取り入れた料理をお出ししています。特に、季節の食材を活かした会席料理は多くのお客様にご好評いただいております。一期一会の心でお客様をお迎えいたします。",
	},
	{
		Name:         "Bistro Luna",
		Address:      "東京都港区六本木3-2-1",
		Hours:        strPtr("18:00-24:00"),
		Phone:        strPtr("03-2345-6789"),
		MainImageUrl: "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800",
		OwnerMessage: "フランスで学んだ本格的な味をカジュアルに",
		Story:        "パリの三つ星レストランで修行を積んだシェフが、本格的なフレンチをもっと身近に感じてもらいたいという想いで開いたビストロです。厳選した食材と伝統的な技法で作る料理は、特別な日にも普段使いにも最適です。ワインとのマリアージュもお楽しみください。",
	},
	{
		Name:         "麺屋 龍",
		Address:      "東京都新宿区歌舞伎町2-3-4",
		Hours:        strPtr("11:00-15:00, 18:00-23:00"),
		Phone:        strPtr("03-3456-7890"),
		MainImageUrl: "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=800",
		OwnerMessage: "魂を込めた一杯で、お客様を笑顔に",
		Story:        "ラーメン一筋30年の店主が、試行錯誤を重ねて完成させた自慢のスープ。豚骨と鶏ガラを18時間煮込んだ濃厚なスープに、自家製麺が絡む至極の一杯です。深夜まで営業しているので、仕事帰りの方にも愛されています。一杯一杯に込めた想いを味わってください。",
	},
	{
		Name:         "Cafe Mellow",
		Address:      "東京都世田谷区三軒茶屋1-4-5",
		Hours:        strPtr("8:00-20:00"),
		Phone:        strPtr("03-4567-8901"),
		MainImageUrl: "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=800",
		OwnerMessage: "ゆったりとした時間を過ごせる隠れ家カフェ",
		Story:        "住宅街の静かな一角にある小さなカフェです。自家焙煎のコーヒーと手作りのスイーツで、お客様にほっと一息つける時間を提供したいと思っています。本を読んだり、友人との会話を楽しんだり、思い思いの時間をお過ごしください。猫のマスターも皆様をお待ちしています。",
	},
	{
		Name:         "焼肉 炎",
		Address:      "東京都品川区大井町5-6-7",
		Hours:        strPtr("17:00-24:00"),
		Phone:        strPtr("03-5678-9012"),
		MainImageUrl: "https://images.unsplash.com/photo-1529692236671-f1f6cf9683ba?w=800",
		OwnerMessage: "最高級の和牛で、特別な夜を演出します",
		Story:        "A5ランクの和牛のみを使用した焼肉店です。肉の目利きには絶対の自信があり、その日一番美味しい部位をお客様にご提供しています。炭火で焼く肉の香ばしさと、とろけるような食感をお楽しみください。記念日や大切な方との食事に最適な空間をご用意しています。",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("サンプルデータを投入中...")

	// Favorites reference restaurants, so they go first.
	if err := db.Exec("DELETE FROM favorites").Error; err != nil {
		color.Red("既存のお気に入りの削除に失敗しました: %v", err)
		os.Exit(1)
	}
	if err := db.Exec("DELETE FROM restaurants").Error; err != nil {
		color.Red("既存の店舗の削除に失敗しました: %v", err)
		os.Exit(1)
	}

	for i := range sampleRestaurants {
		r := sampleRestaurants[i]
		r.IsActive = true
		r.CreatedAt = time.Now()
		if err := db.Create(&r).Error; err != nil {
			color.Red("店舗の投入に失敗しました (%s): %v", r.Name, err)
			os.Exit(1)
		}
		color.Green("✅ %s を追加しました", r.Name)
	}

	var count int64
	if err := db.Table("restaurants").Count(&count).Error; err != nil {
		color.Red("店舗数の確認に失敗しました: %v", err)
		os.Exit(1)
	}

	color.Cyan("🎉 サンプルデータの投入が完了しました！")
	color.Cyan("📊 現在の店舗数: %d", count)
}
