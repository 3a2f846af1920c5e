package answering

// SchemaDescription é o contexto de banco enviado ao modelo na geração de SQL
const SchemaDescription = `
DATABASE SCHEMA (PostgreSQL):

1. product_sales table:
   - id (Primary Key)
   - date (DATE, daily sales date)
   - item_id (Product identifier - integer)
   - total_sales (Total sales amount in dollars - double precision)
   - total_units_ordered (Number of units ordered - integer)
   - created_at (Timestamp)

2. product_ad_metrics table:
   - id (Primary Key)
   - date (DATE, daily advertising date)
   - item_id (Product identifier - integer, matches product_sales.item_id)
   - ad_sales (Revenue from advertising - double precision)
   - impressions (Number of ad impressions - integer)
   - ad_spend (Amount spent on advertising - double precision)
   - clicks (Number of ad clicks - integer)
   - units_sold (Number of units sold through ads - integer)
   - created_at (Timestamp)

   CALCULATED FIELDS (not stored, compute them in the query):
   - CPC (Cost Per Click): ad_spend / clicks (only when clicks > 0)
   - CTR (Click Through Rate %): (clicks::double precision / impressions) * 100 (only when impressions > 0)
   - RoAS (Return on Ad Spend %): (ad_sales / ad_spend) * 100 (only when ad_spend > 0)

3. product_eligibility table:
   - id (Primary Key)
   - item_id (Product identifier - integer)
   - eligibility_datetime (TIMESTAMP when eligibility was checked)
   - eligibility (BOOLEAN - TRUE if eligible for ads, FALSE if not)
   - message (Text explaining eligibility status, NULL if eligible)
   - created_at (Timestamp)

RELATIONSHIPS:
- All tables are connected only via item_id (integer)
- product_sales contains daily total sales performance
- product_ad_metrics contains daily advertising performance
- product_eligibility contains the history of advertising eligibility checks

SAMPLE QUERIES:
- Total sales: SELECT SUM(total_sales) AS total_sales FROM product_sales;
- Total ad spend: SELECT SUM(ad_spend) AS total_ad_spend FROM product_ad_metrics;
- Overall RoAS: SELECT (SUM(ad_sales) / SUM(ad_spend)) * 100 AS roas FROM product_ad_metrics WHERE ad_spend > 0;
- Highest CPC product: SELECT item_id, ad_spend / clicks AS cpc FROM product_ad_metrics WHERE clicks > 0 ORDER BY cpc DESC LIMIT 1;
- Products by sales: SELECT item_id, SUM(total_sales) AS sales FROM product_sales GROUP BY item_id ORDER BY sales DESC;
`
